package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	validation "github.com/jellydator/validation"

	documentUseCase "github.com/allisson/documents/internal/document/usecase"
	appValidation "github.com/allisson/documents/internal/validation"
)

type completeOutput struct {
	Kind     string `json:"kind"`
	Base     string `json:"base"`
	Document string `json:"document"`
	Masked   string `json:"masked"`
}

// RunComplete appends the check digits to a document base and prints both the
// raw and the masked result.
func RunComplete(
	ctx context.Context,
	useCase documentUseCase.DocumentUseCase,
	logger *slog.Logger,
	writer io.Writer,
	kind string,
	base string,
	format string,
) error {
	kindType, err := parseKind(kind)
	if err != nil {
		return err
	}
	if err := validateOutputFormat(format); err != nil {
		return err
	}
	if err := validateArgument("base", base, validation.Required, appValidation.Digits); err != nil {
		return err
	}

	logger.Info("completing document", slog.String("kind", kindType.String()))

	document, err := useCase.Complete(ctx, kindType, base)
	if err != nil {
		return fmt.Errorf("failed to complete document: %w", err)
	}

	masked, err := useCase.Mask(ctx, kindType, document)
	if err != nil {
		return fmt.Errorf("failed to mask document: %w", err)
	}

	return writeResult(writer, format, fmt.Sprintf("%s\t%s", document, masked), completeOutput{
		Kind:     kindType.String(),
		Base:     base,
		Document: document,
		Masked:   masked,
	})
}

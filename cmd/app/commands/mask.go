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

type maskOutput struct {
	Kind   string `json:"kind"`
	Value  string `json:"value"`
	Masked string `json:"masked"`
}

// RunMask applies the kind mask to a digit string.
func RunMask(
	ctx context.Context,
	useCase documentUseCase.DocumentUseCase,
	logger *slog.Logger,
	writer io.Writer,
	kind string,
	value string,
	format string,
) error {
	kindType, err := parseKind(kind)
	if err != nil {
		return err
	}
	if err := validateOutputFormat(format); err != nil {
		return err
	}
	if err := validateArgument("value", value, validation.Required, appValidation.Digits); err != nil {
		return err
	}

	logger.Info("masking document", slog.String("kind", kindType.String()))

	masked, err := useCase.Mask(ctx, kindType, value)
	if err != nil {
		return fmt.Errorf("failed to mask document: %w", err)
	}

	return writeResult(writer, format, masked, maskOutput{
		Kind:   kindType.String(),
		Value:  value,
		Masked: masked,
	})
}

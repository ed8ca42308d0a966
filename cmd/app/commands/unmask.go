package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	validation "github.com/jellydator/validation"

	documentUseCase "github.com/allisson/documents/internal/document/usecase"
)

type unmaskOutput struct {
	Kind     string `json:"kind"`
	Value    string `json:"value"`
	Unmasked string `json:"unmasked"`
}

// RunUnmask strips the kind mask from a fully masked document.
func RunUnmask(
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
	if err := validateArgument("value", value, validation.Required); err != nil {
		return err
	}

	logger.Info("unmasking document", slog.String("kind", kindType.String()))

	unmasked, err := useCase.Unmask(ctx, kindType, value)
	if err != nil {
		return fmt.Errorf("failed to unmask document: %w", err)
	}

	return writeResult(writer, format, unmasked, unmaskOutput{
		Kind:     kindType.String(),
		Value:    value,
		Unmasked: unmasked,
	})
}

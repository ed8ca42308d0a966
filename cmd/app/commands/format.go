package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	validation "github.com/jellydator/validation"

	documentUseCase "github.com/allisson/documents/internal/document/usecase"
	apperrors "github.com/allisson/documents/internal/errors"
	appValidation "github.com/allisson/documents/internal/validation"
)

type formatOutput struct {
	Kind      string `json:"kind"`
	Value     int64  `json:"value"`
	Formatted string `json:"formatted"`
}

// RunFormat masks the numeric value of a document, zero-padding it to the kind length.
func RunFormat(
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

	number, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrInvalidInput, "value: %v", err)
	}

	logger.Info("formatting document", slog.String("kind", kindType.String()))

	formatted, err := useCase.Format(ctx, kindType, number)
	if err != nil {
		return fmt.Errorf("failed to format document: %w", err)
	}

	return writeResult(writer, format, formatted, formatOutput{
		Kind:      kindType.String(),
		Value:     number,
		Formatted: formatted,
	})
}

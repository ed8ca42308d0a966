package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	validation "github.com/jellydator/validation"

	documentUseCase "github.com/allisson/documents/internal/document/usecase"
	appValidation "github.com/allisson/documents/internal/validation"
)

type parseOutput struct {
	Kind   string `json:"kind"`
	Value  string `json:"value"`
	Number int64  `json:"number"`
}

// RunParse prints the numeric value of a raw or masked document.
func RunParse(
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
	if err := validateArgument("value", value, validation.Required, appValidation.NotBlank); err != nil {
		return err
	}

	logger.Info("parsing document", slog.String("kind", kindType.String()))

	number, err := useCase.Parse(ctx, kindType, value)
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}

	return writeResult(writer, format, strconv.FormatInt(number, 10), parseOutput{
		Kind:   kindType.String(),
		Value:  value,
		Number: number,
	})
}

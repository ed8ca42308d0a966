package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	validation "github.com/jellydator/validation"

	documentUseCase "github.com/allisson/documents/internal/document/usecase"
	apperrors "github.com/allisson/documents/internal/errors"
)

type validationResult struct {
	Value string `json:"value"`
	Valid bool   `json:"valid"`
}

type validateOutput struct {
	Kind    string             `json:"kind"`
	Total   int                `json:"total"`
	Valid   int                `json:"valid"`
	Invalid int                `json:"invalid"`
	Results []validationResult `json:"results"`
}

// RunValidate checks every value against the kind check digits. Invalid
// documents are reported in the output, not returned as errors.
func RunValidate(
	ctx context.Context,
	useCase documentUseCase.DocumentUseCase,
	logger *slog.Logger,
	writer io.Writer,
	kind string,
	values []string,
	format string,
) error {
	kindType, err := parseKind(kind)
	if err != nil {
		return err
	}
	if err := validateOutputFormat(format); err != nil {
		return err
	}
	if err := validation.Validate(values, validation.Required); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "at least one value is required")
	}

	logger.Info("validating documents",
		slog.String("kind", kindType.String()),
		slog.Int("count", len(values)),
	)

	valid, err := useCase.ValidateBatch(ctx, kindType, values)
	if err != nil {
		return fmt.Errorf("failed to validate documents: %w", err)
	}

	output := validateOutput{
		Kind:    kindType.String(),
		Total:   len(values),
		Results: make([]validationResult, len(values)),
	}
	for i, value := range values {
		output.Results[i] = validationResult{Value: value, Valid: valid[i]}
		if valid[i] {
			output.Valid++
		}
	}
	output.Invalid = output.Total - output.Valid

	logger.Info("validation completed",
		slog.String("kind", kindType.String()),
		slog.Int("valid", output.Valid),
		slog.Int("invalid", output.Invalid),
	)

	if format == formatJSON {
		return writeJSON(writer, output)
	}
	return outputValidateText(writer, output)
}

// outputValidateText writes one "value<TAB>valid|invalid" line per input.
func outputValidateText(writer io.Writer, output validateOutput) error {
	var b strings.Builder
	for _, result := range output.Results {
		status := "invalid"
		if result.Valid {
			status = "valid"
		}
		fmt.Fprintf(&b, "%s\t%s\n", result.Value, status)
	}
	_, err := io.WriteString(writer, b.String())
	return err
}

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	validation "github.com/jellydator/validation"

	documentUseCase "github.com/allisson/documents/internal/document/usecase"
	appValidation "github.com/allisson/documents/internal/validation"
)

// maxGenerateCount bounds a single generate invocation.
const maxGenerateCount = 10000

type generateOutput struct {
	Kind      string   `json:"kind"`
	Masked    bool     `json:"masked"`
	Documents []string `json:"documents"`
}

// RunGenerate prints count random valid documents of the kind.
func RunGenerate(
	ctx context.Context,
	useCase documentUseCase.DocumentUseCase,
	logger *slog.Logger,
	writer io.Writer,
	kind string,
	count int,
	masked bool,
	format string,
) error {
	kindType, err := parseKind(kind)
	if err != nil {
		return err
	}
	if err := validateOutputFormat(format); err != nil {
		return err
	}
	err = validation.Validate(count, validation.Required, validation.Min(1), validation.Max(maxGenerateCount))
	if err != nil {
		return appValidation.WrapValidationError(fmt.Errorf("count: %w", err))
	}

	logger.Info("generating documents",
		slog.String("kind", kindType.String()),
		slog.Int("count", count),
		slog.Bool("masked", masked),
	)

	documents := make([]string, 0, count)
	for range count {
		if err := ctx.Err(); err != nil {
			return err
		}
		document, err := useCase.Generate(ctx, kindType, masked)
		if err != nil {
			return fmt.Errorf("failed to generate document: %w", err)
		}
		documents = append(documents, document)
	}

	return writeResult(writer, format, strings.Join(documents, "\n"), generateOutput{
		Kind:      kindType.String(),
		Masked:    masked,
		Documents: documents,
	})
}

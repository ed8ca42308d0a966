package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	documentDomain "github.com/allisson/documents/internal/document/domain"
	documentService "github.com/allisson/documents/internal/document/service"
)

// DefaultBatchConcurrency is used when Config.BatchConcurrency is not positive.
const DefaultBatchConcurrency = 8

// Config holds document use case configuration.
type Config struct {
	BatchConcurrency int
}

type documentUseCase struct {
	config     Config
	documents  map[documentDomain.KindType]*documentService.Document
	generators map[documentDomain.KindType]documentService.DocumentGenerator
	logger     *slog.Logger
}

func (d *documentUseCase) document(kindType documentDomain.KindType) (*documentService.Document, error) {
	doc, ok := d.documents[kindType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", documentDomain.ErrInvalidKindType, kindType.String())
	}
	return doc, nil
}

// Format masks value for the given kind.
func (d *documentUseCase) Format(
	ctx context.Context,
	kindType documentDomain.KindType,
	value int64,
) (string, error) {
	doc, err := d.document(kindType)
	if err != nil {
		return "", err
	}
	return doc.Format(value)
}

// Mask applies the kind mask to a digit string.
func (d *documentUseCase) Mask(
	ctx context.Context,
	kindType documentDomain.KindType,
	value string,
) (string, error) {
	doc, err := d.document(kindType)
	if err != nil {
		return "", err
	}
	return doc.Mask(value)
}

// Unmask strips the kind mask.
func (d *documentUseCase) Unmask(
	ctx context.Context,
	kindType documentDomain.KindType,
	masked string,
) (string, error) {
	doc, err := d.document(kindType)
	if err != nil {
		return "", err
	}
	return doc.Unmask(masked)
}

// Parse converts a raw or masked document to its number.
func (d *documentUseCase) Parse(
	ctx context.Context,
	kindType documentDomain.KindType,
	value string,
) (int64, error) {
	doc, err := d.document(kindType)
	if err != nil {
		return 0, err
	}
	return doc.Parse(value)
}

// Validate checks a single document.
func (d *documentUseCase) Validate(
	ctx context.Context,
	kindType documentDomain.KindType,
	value string,
) (bool, error) {
	doc, err := d.document(kindType)
	if err != nil {
		return false, err
	}

	valid := doc.Validate(value)
	d.logger.DebugContext(ctx, "document validated",
		slog.String("kind", kindType.String()),
		slog.Bool("valid", valid),
	)

	return valid, nil
}

// ValidateNumber checks a single numeric document.
func (d *documentUseCase) ValidateNumber(
	ctx context.Context,
	kindType documentDomain.KindType,
	value int64,
) (bool, error) {
	doc, err := d.document(kindType)
	if err != nil {
		return false, err
	}
	return doc.ValidateNumber(value), nil
}

// ValidateBatch fans validation out to at most Config.BatchConcurrency goroutines.
func (d *documentUseCase) ValidateBatch(
	ctx context.Context,
	kindType documentDomain.KindType,
	values []string,
) ([]bool, error) {
	doc, err := d.document(kindType)
	if err != nil {
		return nil, err
	}

	results := make([]bool, len(values))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.config.BatchConcurrency)

	for i, value := range values {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = doc.Validate(value)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Wait is clean when the loop stopped before scheduling the remaining values.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.logger.DebugContext(ctx, "document batch validated",
		slog.String("kind", kindType.String()),
		slog.Int("count", len(values)),
		slog.Int("concurrency", d.config.BatchConcurrency),
	)

	return results, nil
}

// Complete computes the check digits for base.
func (d *documentUseCase) Complete(
	ctx context.Context,
	kindType documentDomain.KindType,
	base string,
) (string, error) {
	doc, err := d.document(kindType)
	if err != nil {
		return "", err
	}
	return doc.Complete(base)
}

// Generate draws a random valid document of the given kind.
func (d *documentUseCase) Generate(
	ctx context.Context,
	kindType documentDomain.KindType,
	masked bool,
) (string, error) {
	doc, err := d.document(kindType)
	if err != nil {
		return "", err
	}

	generated, err := d.generators[kindType].Generate()
	if err != nil {
		return "", err
	}

	d.logger.DebugContext(ctx, "document generated",
		slog.String("kind", kindType.String()),
		slog.Bool("masked", masked),
	)

	if !masked {
		return generated, nil
	}
	return doc.Mask(generated)
}

// NewDocumentUseCase creates a DocumentUseCase serving every built-in kind.
// A nil logger discards debug output.
func NewDocumentUseCase(config Config, logger *slog.Logger) DocumentUseCase {
	if config.BatchConcurrency <= 0 {
		config.BatchConcurrency = DefaultBatchConcurrency
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	kinds := documentDomain.Kinds()
	uc := &documentUseCase{
		config:     config,
		documents:  make(map[documentDomain.KindType]*documentService.Document, len(kinds)),
		generators: make(map[documentDomain.KindType]documentService.DocumentGenerator, len(kinds)),
		logger:     logger,
	}
	for _, kind := range kinds {
		uc.documents[kind.Type()] = documentService.NewDocument(kind)
		uc.generators[kind.Type()] = documentService.NewDocumentGenerator(kind)
	}

	return uc
}

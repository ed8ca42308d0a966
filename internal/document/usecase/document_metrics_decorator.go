package usecase

import (
	"context"
	"time"

	documentDomain "github.com/allisson/documents/internal/document/domain"
	"github.com/allisson/documents/internal/metrics"
)

const metricsDomain = "documents"

// documentUseCaseWithMetrics decorates DocumentUseCase with metrics instrumentation.
type documentUseCaseWithMetrics struct {
	next    DocumentUseCase
	metrics metrics.BusinessMetrics
}

// NewDocumentUseCaseWithMetrics wraps a DocumentUseCase with metrics recording.
func NewDocumentUseCaseWithMetrics(useCase DocumentUseCase, m metrics.BusinessMetrics) DocumentUseCase {
	return &documentUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (d *documentUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFromError(err)
	d.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	d.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Format records metrics for document formatting.
func (d *documentUseCaseWithMetrics) Format(
	ctx context.Context,
	kindType documentDomain.KindType,
	value int64,
) (string, error) {
	start := time.Now()
	formatted, err := d.next.Format(ctx, kindType, value)
	d.record(ctx, "format", start, err)
	return formatted, err
}

// Mask records metrics for mask application.
func (d *documentUseCaseWithMetrics) Mask(
	ctx context.Context,
	kindType documentDomain.KindType,
	value string,
) (string, error) {
	start := time.Now()
	masked, err := d.next.Mask(ctx, kindType, value)
	d.record(ctx, "mask", start, err)
	return masked, err
}

// Unmask records metrics for mask removal.
func (d *documentUseCaseWithMetrics) Unmask(
	ctx context.Context,
	kindType documentDomain.KindType,
	masked string,
) (string, error) {
	start := time.Now()
	unmasked, err := d.next.Unmask(ctx, kindType, masked)
	d.record(ctx, "unmask", start, err)
	return unmasked, err
}

// Parse records metrics for document parsing.
func (d *documentUseCaseWithMetrics) Parse(
	ctx context.Context,
	kindType documentDomain.KindType,
	value string,
) (int64, error) {
	start := time.Now()
	number, err := d.next.Parse(ctx, kindType, value)
	d.record(ctx, "parse", start, err)
	return number, err
}

// Validate records metrics for single document validation.
func (d *documentUseCaseWithMetrics) Validate(
	ctx context.Context,
	kindType documentDomain.KindType,
	value string,
) (bool, error) {
	start := time.Now()
	valid, err := d.next.Validate(ctx, kindType, value)
	d.record(ctx, "validate", start, err)
	return valid, err
}

// ValidateNumber records metrics for numeric document validation.
func (d *documentUseCaseWithMetrics) ValidateNumber(
	ctx context.Context,
	kindType documentDomain.KindType,
	value int64,
) (bool, error) {
	start := time.Now()
	valid, err := d.next.ValidateNumber(ctx, kindType, value)
	d.record(ctx, "validate_number", start, err)
	return valid, err
}

// ValidateBatch records one operation for the whole batch.
func (d *documentUseCaseWithMetrics) ValidateBatch(
	ctx context.Context,
	kindType documentDomain.KindType,
	values []string,
) ([]bool, error) {
	start := time.Now()
	results, err := d.next.ValidateBatch(ctx, kindType, values)
	d.record(ctx, "validate_batch", start, err)
	return results, err
}

// Complete records metrics for check digit computation.
func (d *documentUseCaseWithMetrics) Complete(
	ctx context.Context,
	kindType documentDomain.KindType,
	base string,
) (string, error) {
	start := time.Now()
	complete, err := d.next.Complete(ctx, kindType, base)
	d.record(ctx, "complete", start, err)
	return complete, err
}

// Generate records metrics for document generation.
func (d *documentUseCaseWithMetrics) Generate(
	ctx context.Context,
	kindType documentDomain.KindType,
	masked bool,
) (string, error) {
	start := time.Now()
	generated, err := d.next.Generate(ctx, kindType, masked)
	d.record(ctx, "generate", start, err)
	return generated, err
}

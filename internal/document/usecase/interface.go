// Package usecase exposes document formatting, validation and generation for
// every supported kind behind a single context-aware interface.
package usecase

import (
	"context"

	documentDomain "github.com/allisson/documents/internal/document/domain"
)

// DocumentUseCase defines the document operations dispatched on a kind type.
// Every method returns domain.ErrInvalidKindType for an unsupported kind.
type DocumentUseCase interface {
	// Format masks the decimal form of value, zero-padded to the kind length.
	Format(ctx context.Context, kindType documentDomain.KindType, value int64) (string, error)

	// Mask zero-pads a digit string and applies the kind mask.
	Mask(ctx context.Context, kindType documentDomain.KindType, value string) (string, error)

	// Unmask removes the kind mask from a fully masked value.
	Unmask(ctx context.Context, kindType documentDomain.KindType, masked string) (string, error)

	// Parse returns the numeric value of a raw or masked document.
	Parse(ctx context.Context, kindType documentDomain.KindType, value string) (int64, error)

	// Validate reports whether value is a valid document. Malformed input is a
	// false result, never an error.
	Validate(ctx context.Context, kindType documentDomain.KindType, value string) (bool, error)

	// ValidateNumber is Validate for numeric input.
	ValidateNumber(ctx context.Context, kindType documentDomain.KindType, value int64) (bool, error)

	// ValidateBatch validates values concurrently. Results keep the input order.
	// Returns ctx.Err() when the context is cancelled before the batch completes.
	ValidateBatch(ctx context.Context, kindType documentDomain.KindType, values []string) ([]bool, error)

	// Complete appends the two check digits to base and returns the raw document.
	Complete(ctx context.Context, kindType documentDomain.KindType, base string) (string, error)

	// Generate creates a random valid document, masked when requested.
	Generate(ctx context.Context, kindType documentDomain.KindType, masked bool) (string, error)
}

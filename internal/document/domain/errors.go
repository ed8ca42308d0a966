package domain

import (
	"github.com/allisson/documents/internal/errors"
)

var (
	// ErrInvalidPattern indicates a mask pattern is empty or has no placeholder.
	ErrInvalidPattern = errors.Wrap(errors.ErrInvalidInput, "invalid mask pattern")

	// ErrValueTooLong indicates the value has more digits than the mask can hold.
	ErrValueTooLong = errors.Wrap(errors.ErrInvalidInput, "value exceeds maximum length")

	// ErrValueTooShort indicates the value has fewer characters than the mask placeholders.
	ErrValueTooShort = errors.Wrap(errors.ErrInvalidInput, "value shorter than mask placeholders")

	// ErrLengthMismatch indicates a masked value does not have the pattern length.
	ErrLengthMismatch = errors.Wrap(errors.ErrInvalidInput, "masked value length must equal pattern length")

	// ErrInvalidLength indicates the value length matches neither the raw nor the masked form.
	ErrInvalidLength = errors.Wrap(errors.ErrInvalidInput, "invalid document length")

	// ErrInvalidDigits indicates the value contains characters other than 0-9.
	ErrInvalidDigits = errors.Wrap(errors.ErrInvalidInput, "document must contain only digits")

	// ErrNegativeValue indicates a negative number was given as a document.
	ErrNegativeValue = errors.Wrap(errors.ErrInvalidInput, "document number cannot be negative")

	// ErrEmptyValue indicates a blank value was given as a document.
	ErrEmptyValue = errors.Wrap(errors.ErrInvalidInput, "document cannot be empty")

	// ErrInvalidKind indicates inconsistent kind configuration (length, mask or weights).
	ErrInvalidKind = errors.Wrap(errors.ErrInvalidInput, "invalid document kind")

	// ErrInvalidKindType indicates an unsupported kind type was requested.
	ErrInvalidKindType = errors.Wrap(errors.ErrInvalidInput, "invalid document kind type")

	// ErrChecksumUnsupported indicates a checksum operation on a mask-only kind.
	ErrChecksumUnsupported = errors.Wrap(errors.ErrInvalidInput, "document kind has no check digits")
)

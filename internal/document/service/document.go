package service

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	documentDomain "github.com/allisson/documents/internal/document/domain"
)

// Document exposes the caller-facing operations of one identifier kind. It
// only reads its Kind, so a single Document can serve concurrent callers.
type Document struct {
	kind documentDomain.Kind
}

// Package-level documents for the built-in kinds.
var (
	CEP  = NewDocument(documentDomain.CEP)
	CPF  = NewDocument(documentDomain.CPF)
	CNPJ = NewDocument(documentDomain.CNPJ)
)

// NewDocument binds the operations to kind.
func NewDocument(kind documentDomain.Kind) *Document {
	return &Document{kind: kind}
}

// Kind returns the kind configuration.
func (d *Document) Kind() documentDomain.Kind {
	return d.kind
}

// Format masks the decimal form of value, zero-padded to the kind length.
func (d *Document) Format(value int64) (string, error) {
	if value < 0 {
		return "", documentDomain.ErrNegativeValue
	}
	return d.Mask(strconv.FormatInt(value, 10))
}

// Mask zero-pads value to the kind length and applies the kind mask. Values
// longer than the kind length are rejected, never truncated.
func (d *Document) Mask(value string) (string, error) {
	if n := utf8.RuneCountInString(value); n > d.kind.Length() {
		return "", fmt.Errorf("%w: %s has at most %d digits, got %d",
			documentDomain.ErrValueTooLong, d.kind.Type().Label(), d.kind.Length(), n)
	}
	return ApplyMask(d.kind.Mask(), leftPad(value, d.kind.Length()))
}

// Unmask removes the kind mask from a fully masked value.
func (d *Document) Unmask(masked string) (string, error) {
	return RemoveMask(d.kind.Mask(), masked)
}

// Parse returns the numeric value of a raw or masked document. Masked input is
// recognised by having exactly the formatted length. Raw input may be shorter
// than the kind length since leading zeros carry no numeric value.
func (d *Document) Parse(value string) (int64, error) {
	if isBlank(value) {
		return 0, documentDomain.ErrEmptyValue
	}

	n := utf8.RuneCountInString(value)
	if n == d.kind.FormattedLength() {
		unmasked, err := d.Unmask(value)
		if err != nil {
			return 0, err
		}
		value = unmasked
		n = utf8.RuneCountInString(value)
	}
	if n > d.kind.Length() {
		return 0, fmt.Errorf("%w: %d characters, want up to %d or exactly %d masked",
			documentDomain.ErrInvalidLength, n, d.kind.Length(), d.kind.FormattedLength())
	}

	if _, err := parseDigits(value); err != nil {
		return 0, err
	}
	number, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", documentDomain.ErrInvalidDigits, err)
	}

	return number, nil
}

// Validate reports whether value is a valid document. Kinds without check
// digits accept any non-blank value. Checksum kinds accept the raw digits or
// the masked form and verify both check digits. Validate never fails; any
// malformed input is simply invalid.
func (d *Document) Validate(value string) bool {
	if !d.kind.HasChecksum() {
		return !isBlank(value)
	}

	if utf8.RuneCountInString(value) == d.kind.FormattedLength() {
		unmasked, err := d.Unmask(value)
		if err != nil {
			return false
		}
		value = unmasked
	}
	if len(value) != d.kind.Length() {
		return false
	}

	digits, err := parseDigits(value)
	if err != nil {
		return false
	}

	return IsValidModulo11(digits, d.kind.Weights())
}

// ValidateNumber is Validate for numeric input, which is zero-padded to the
// kind length first. Kinds without check digits accept every number.
func (d *Document) ValidateNumber(value int64) bool {
	if !d.kind.HasChecksum() {
		return true
	}
	if value < 0 {
		return false
	}

	s := strconv.FormatInt(value, 10)
	if len(s) > d.kind.Length() {
		return false
	}

	return d.Validate(leftPad(s, d.kind.Length()))
}

// Complete appends the two check digits to base, which is zero-padded to the
// kind length minus the check digits. The result is the raw document.
func (d *Document) Complete(base string) (string, error) {
	if !d.kind.HasChecksum() {
		return "", fmt.Errorf("%w: %s", documentDomain.ErrChecksumUnsupported, d.kind.Type().Label())
	}

	baseLength := d.kind.Length() - documentDomain.CheckDigitCount
	if n := utf8.RuneCountInString(base); n > baseLength {
		return "", fmt.Errorf("%w: base has at most %d digits, got %d",
			documentDomain.ErrValueTooLong, baseLength, n)
	}

	digits, err := parseDigits(leftPad(base, baseLength))
	if err != nil {
		return "", err
	}

	first, second, err := Modulo11CheckDigits(digits, d.kind.Weights())
	if err != nil {
		return "", err
	}

	return formatDigits(append(digits, first, second)), nil
}

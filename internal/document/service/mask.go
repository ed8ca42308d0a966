package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	documentDomain "github.com/allisson/documents/internal/document/domain"
)

// ApplyMask interleaves value into the literal skeleton of pattern. Each
// placeholder consumes the next rune of value; literals are copied unchanged.
// The value is used as is, without padding or digit checks.
//
//	ApplyMask("@@.@@@-@@@", "01345011") -> "01.345-011"
func ApplyMask(pattern, value string) (string, error) {
	if err := checkPattern(pattern); err != nil {
		return "", err
	}

	valueRunes := []rune(value)
	placeholders := documentDomain.CountPlaceholders(pattern)
	if len(valueRunes) >= utf8.RuneCountInString(pattern) || len(valueRunes) > placeholders {
		return "", fmt.Errorf("%w: %d characters for %d placeholders",
			documentDomain.ErrValueTooLong, len(valueRunes), placeholders)
	}
	if len(valueRunes) < placeholders {
		return "", fmt.Errorf("%w: %d characters for %d placeholders",
			documentDomain.ErrValueTooShort, len(valueRunes), placeholders)
	}

	var b strings.Builder
	b.Grow(len(pattern) + len(value))
	vi := 0
	for _, c := range pattern {
		if c == documentDomain.MaskPlaceholder {
			b.WriteRune(valueRunes[vi])
			vi++
			continue
		}
		b.WriteRune(c)
	}

	return b.String(), nil
}

// RemoveMask extracts the runes at placeholder positions of pattern. Literal
// positions are skipped without checking that they match the pattern.
//
//	RemoveMask("@@.@@@-@@@", "01.345-011") -> "01345011"
func RemoveMask(pattern, masked string) (string, error) {
	if err := checkPattern(pattern); err != nil {
		return "", err
	}

	patternRunes := []rune(pattern)
	maskedRunes := []rune(masked)
	if len(maskedRunes) != len(patternRunes) {
		return "", fmt.Errorf("%w: got %d, want %d",
			documentDomain.ErrLengthMismatch, len(maskedRunes), len(patternRunes))
	}

	out := make([]rune, 0, documentDomain.CountPlaceholders(pattern))
	for i, c := range patternRunes {
		if c == documentDomain.MaskPlaceholder {
			out = append(out, maskedRunes[i])
		}
	}

	return string(out), nil
}

func checkPattern(pattern string) error {
	if pattern == "" || !strings.ContainsRune(pattern, documentDomain.MaskPlaceholder) {
		return fmt.Errorf("%w: %q", documentDomain.ErrInvalidPattern, pattern)
	}
	return nil
}

package service

import (
	"strings"
	"unicode/utf8"

	documentDomain "github.com/allisson/documents/internal/document/domain"
)

// parseDigits converts a string of ASCII digits to their integer values.
func parseDigits(s string) ([]int, error) {
	digits := make([]int, 0, len(s))
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, documentDomain.ErrInvalidDigits
		}
		digits = append(digits, int(c-'0'))
	}
	return digits, nil
}

// formatDigits is the inverse of parseDigits. Digits must be in 0..9.
func formatDigits(digits []int) string {
	out := make([]byte, len(digits))
	for i, d := range digits {
		//nolint:gosec // d is bounded [0,9] by callers
		out[i] = byte('0' + d)
	}
	return string(out)
}

// leftPad prefixes s with zeros up to length. Longer values are returned unchanged.
func leftPad(s string, length int) string {
	if dif := length - utf8.RuneCountInString(s); dif > 0 {
		return strings.Repeat("0", dif) + s
	}
	return s
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

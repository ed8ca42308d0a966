package service

import (
	"fmt"

	documentDomain "github.com/allisson/documents/internal/document/domain"
)

// IsValidModulo11 reports whether the last two digits are the modulo-11 check
// digits of the leading ones under the given weights. len(weights) must be
// len(digits)-1. Sequences whose leading digits are a single repeated value
// are rejected even when the arithmetic holds.
//
// The function is total: any structural problem yields false.
func IsValidModulo11(digits, weights []int) bool {
	n := len(digits)
	if n < documentDomain.CheckDigitCount+1 || len(weights) != n-1 {
		return false
	}
	for _, d := range digits {
		if d < 0 || d > 9 {
			return false
		}
	}

	if IsRepeatedSequence(digits) {
		return false
	}

	return computeCheckDigit(digits, weights, true) == digits[n-2] &&
		computeCheckDigit(digits, weights, false) == digits[n-1]
}

// IsRepeatedSequence reports whether every digit before the two check digits
// equals its neighbour, as in 111.111.111-xx.
func IsRepeatedSequence(digits []int) bool {
	head := len(digits) - documentDomain.CheckDigitCount
	if head < 1 {
		return false
	}

	pairs := 0
	for i := 1; i < head; i++ {
		if digits[i-1] == digits[i] {
			pairs++
		}
	}

	return pairs == head-1
}

// Modulo11CheckDigits computes the two check digits for base, which must hold
// len(weights)-1 digits. For any base there is exactly one such pair.
func Modulo11CheckDigits(base, weights []int) (first, second int, err error) {
	if len(weights) < documentDomain.CheckDigitCount || len(base) != len(weights)-1 {
		return 0, 0, fmt.Errorf("%w: base has %d digits, want %d",
			documentDomain.ErrInvalidLength, len(base), len(weights)-1)
	}
	for _, d := range base {
		if d < 0 || d > 9 {
			return 0, 0, documentDomain.ErrInvalidDigits
		}
	}

	digits := make([]int, len(base)+documentDomain.CheckDigitCount)
	copy(digits, base)
	first = computeCheckDigit(digits, weights, true)
	digits[len(base)] = first
	second = computeCheckDigit(digits, weights, false)

	return first, second, nil
}

// computeCheckDigit derives one check digit. The first digit pairs weights[1:]
// with the digits before it; the second pairs all weights with the digits
// before it, the first check digit included.
func computeCheckDigit(digits, weights []int, first bool) int {
	start := 0
	if first {
		start = 1
	}

	total := 0
	for i, k := start, 0; i < len(weights); i, k = i+1, k+1 {
		total += weights[i] * digits[k]
	}

	remainder := total % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

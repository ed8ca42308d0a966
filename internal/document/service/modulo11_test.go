package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	documentDomain "github.com/allisson/documents/internal/document/domain"
)

func mustDigits(t *testing.T, s string) []int {
	t.Helper()
	digits, err := parseDigits(s)
	require.NoError(t, err)
	return digits
}

func TestIsValidModulo11(t *testing.T) {
	cpfWeights := documentDomain.CPF.Weights()
	cnpjWeights := documentDomain.CNPJ.Weights()

	tests := []struct {
		name     string
		digits   string
		weights  []int
		expected bool
	}{
		{name: "Valid_CPF", digits: "99835229260", weights: cpfWeights, expected: true},
		{name: "Valid_CPF_Sequential", digits: "12345678909", weights: cpfWeights, expected: true},
		{name: "Valid_CNPJ", digits: "57742897000146", weights: cnpjWeights, expected: true},
		{name: "Invalid_CPF_InteriorDigit", digits: "99835229160", weights: cpfWeights, expected: false},
		{name: "Invalid_CPF_FirstCheckDigit", digits: "99835229250", weights: cpfWeights, expected: false},
		{name: "Invalid_CPF_SecondCheckDigit", digits: "99835229261", weights: cpfWeights, expected: false},
		{name: "Invalid_CNPJ_LeadingDigit", digits: "47742897000146", weights: cnpjWeights, expected: false},
		{name: "Invalid_CPF_RepeatedOnes", digits: "11111111111", weights: cpfWeights, expected: false},
		{name: "Invalid_CPF_RepeatedZeros", digits: "00000000000", weights: cpfWeights, expected: false},
		{name: "Invalid_CNPJ_RepeatedZeros", digits: "00000000000000", weights: cnpjWeights, expected: false},
		{
			// The check digits are arithmetically right, but the base is one repeated digit.
			name:     "Invalid_CNPJ_RepeatedBaseWithMatchingCheckDigits",
			digits:   "11111111111180",
			weights:  cnpjWeights,
			expected: false,
		},
		{name: "Invalid_WrongWeightCount", digits: "99835229260", weights: cnpjWeights, expected: false},
		{name: "Invalid_NilWeights", digits: "99835229260", weights: nil, expected: false},
		{name: "Invalid_TooShort", digits: "11", weights: []int{2}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidModulo11(mustDigits(t, tt.digits), tt.weights))
		})
	}

	t.Run("Invalid_DigitOutOfRange", func(t *testing.T) {
		digits := mustDigits(t, "99835229260")
		digits[3] = 13
		assert.False(t, IsValidModulo11(digits, cpfWeights))
	})

	t.Run("Invalid_NegativeDigit", func(t *testing.T) {
		digits := mustDigits(t, "99835229260")
		digits[0] = -1
		assert.False(t, IsValidModulo11(digits, cpfWeights))
	})

	t.Run("Invalid_Empty", func(t *testing.T) {
		assert.False(t, IsValidModulo11(nil, cpfWeights))
	})
}

func TestIsRepeatedSequence(t *testing.T) {
	tests := []struct {
		name     string
		digits   string
		expected bool
	}{
		{name: "Repeated_CheckDigitsIgnored", digits: "11111111123", expected: true},
		{name: "Repeated_AllSame", digits: "22222222222222", expected: true},
		{name: "NotRepeated_LastBaseDigitDiffers", digits: "22222222222122", expected: false},
		{name: "NotRepeated_FirstDigitDiffers", digits: "12222222222", expected: false},
		{name: "NotRepeated_Valid", digits: "99835229260", expected: false},
		{name: "TooShort", digits: "12", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRepeatedSequence(mustDigits(t, tt.digits)))
		})
	}
}

func TestModulo11CheckDigits(t *testing.T) {
	tests := []struct {
		name           string
		base           string
		weights        []int
		expectedFirst  int
		expectedSecond int
	}{
		{name: "CPF", base: "998352292", weights: documentDomain.CPF.Weights(), expectedFirst: 6, expectedSecond: 0},
		{name: "CPF_Sequential", base: "123456789", weights: documentDomain.CPF.Weights(), expectedFirst: 0, expectedSecond: 9},
		{name: "CNPJ", base: "577428970001", weights: documentDomain.CNPJ.Weights(), expectedFirst: 4, expectedSecond: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second, err := Modulo11CheckDigits(mustDigits(t, tt.base), tt.weights)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedFirst, first)
			assert.Equal(t, tt.expectedSecond, second)
		})
	}

	t.Run("Error_BaseLength", func(t *testing.T) {
		_, _, err := Modulo11CheckDigits(mustDigits(t, "12345678"), documentDomain.CPF.Weights())
		assert.ErrorIs(t, err, documentDomain.ErrInvalidLength)
	})

	t.Run("Error_DigitOutOfRange", func(t *testing.T) {
		base := mustDigits(t, "998352292")
		base[0] = 10
		_, _, err := Modulo11CheckDigits(base, documentDomain.CPF.Weights())
		assert.ErrorIs(t, err, documentDomain.ErrInvalidDigits)
	})

	t.Run("Error_NoWeights", func(t *testing.T) {
		_, _, err := Modulo11CheckDigits(nil, nil)
		assert.ErrorIs(t, err, documentDomain.ErrInvalidLength)
	})
}

package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	documentDomain "github.com/allisson/documents/internal/document/domain"
)

// maxGenerateAttempts bounds the redraws of degenerate checksum bases.
const maxGenerateAttempts = 16

type numericGenerator struct {
	length int
}

// NewNumericGenerator creates a generator of random digit strings of the kind
// length. Used for kinds without check digits.
func NewNumericGenerator(kind documentDomain.Kind) DocumentGenerator {
	return &numericGenerator{length: kind.Length()}
}

// Generate creates a cryptographically secure random numeric document.
func (g *numericGenerator) Generate() (string, error) {
	digits, err := randomDigits(g.length)
	if err != nil {
		return "", err
	}
	return formatDigits(digits), nil
}

type modulo11Generator struct {
	length  int
	weights []int
}

// NewModulo11Generator creates a generator of random documents carrying valid
// modulo-11 check digits. Bases made of a single repeated digit are redrawn.
func NewModulo11Generator(kind documentDomain.Kind) DocumentGenerator {
	return &modulo11Generator{
		length:  kind.Length(),
		weights: kind.Weights(),
	}
}

// Generate creates a random document whose check digits are computed from a
// cryptographically secure random base.
func (g *modulo11Generator) Generate() (string, error) {
	baseLength := g.length - documentDomain.CheckDigitCount

	for range maxGenerateAttempts {
		base, err := randomDigits(baseLength)
		if err != nil {
			return "", err
		}

		first, second, err := Modulo11CheckDigits(base, g.weights)
		if err != nil {
			return "", err
		}

		digits := append(base, first, second)
		if IsRepeatedSequence(digits) {
			continue
		}
		return formatDigits(digits), nil
	}

	return "", fmt.Errorf("failed to draw a non repeated base after %d attempts", maxGenerateAttempts)
}

func randomDigits(length int) ([]int, error) {
	digits := make([]int, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return nil, fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = int(n.Int64())
	}
	return digits, nil
}

package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind is the immutable configuration of one identifier kind: its mask, its
// digit length and its optional modulo-11 weights.
//
// Invariants:
//   - Mask contains at least one MaskPlaceholder
//   - Length equals the number of placeholders in Mask
//   - Weights are absent, or hold exactly Length-1 positive values
//
// A Kind holds no per-call state and can be shared by concurrent callers.
type Kind struct {
	kindType KindType
	mask     string
	length   int
	weights  []int
}

var (
	cpfWeights  = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Built-in kinds.
var (
	// CEP is the postal code kind. It has no check digits.
	CEP = MustKind(KindCEP, CEPMask, CEPLength, nil)

	// CPF is the individual taxpayer ID kind.
	CPF = MustKind(KindCPF, CPFMask, CPFLength, cpfWeights)

	// CNPJ is the legal entity taxpayer ID kind.
	CNPJ = MustKind(KindCNPJ, CNPJMask, CNPJLength, cnpjWeights)
)

// NewKind creates a validated Kind. The weights slice is copied; pass nil for
// kinds without check digits.
func NewKind(kindType KindType, mask string, length int, weights []int) (Kind, error) {
	if len(mask) == 0 || !strings.ContainsRune(mask, MaskPlaceholder) {
		return Kind{}, fmt.Errorf("%w: %q", ErrInvalidPattern, mask)
	}
	if length < 1 {
		return Kind{}, fmt.Errorf("%w: length must be at least 1, got %d", ErrInvalidKind, length)
	}
	if placeholders := CountPlaceholders(mask); placeholders != length {
		return Kind{}, fmt.Errorf(
			"%w: mask %q has %d placeholders for length %d",
			ErrInvalidKind, mask, placeholders, length,
		)
	}

	var copied []int
	if weights != nil {
		if length < CheckDigitCount+1 {
			return Kind{}, fmt.Errorf("%w: checksum kinds need at least 3 digits", ErrInvalidKind)
		}
		if len(weights) != length-1 {
			return Kind{}, fmt.Errorf(
				"%w: expected %d weights, got %d",
				ErrInvalidKind, length-1, len(weights),
			)
		}
		copied = make([]int, len(weights))
		for i, w := range weights {
			if w <= 0 {
				return Kind{}, fmt.Errorf("%w: weight at index %d must be positive", ErrInvalidKind, i)
			}
			copied[i] = w
		}
	}

	return Kind{
		kindType: kindType,
		mask:     mask,
		length:   length,
		weights:  copied,
	}, nil
}

// MustKind creates a Kind, panicking if invalid.
// Use only for package-level constants or in tests.
func MustKind(kindType KindType, mask string, length int, weights []int) Kind {
	k, err := NewKind(kindType, mask, length, weights)
	if err != nil {
		panic(err)
	}
	return k
}

// Type returns the kind type.
func (k Kind) Type() KindType {
	return k.kindType
}

// Mask returns the mask pattern.
func (k Kind) Mask() string {
	return k.mask
}

// Length returns the number of significant digits.
func (k Kind) Length() int {
	return k.length
}

// FormattedLength returns the length, in runes, of a masked value.
func (k Kind) FormattedLength() int {
	return utf8.RuneCountInString(k.mask)
}

// Weights returns a copy of the modulo-11 weights, or nil for mask-only kinds.
func (k Kind) Weights() []int {
	if k.weights == nil {
		return nil
	}
	out := make([]int, len(k.weights))
	copy(out, k.weights)
	return out
}

// HasChecksum reports whether the kind carries modulo-11 check digits.
func (k Kind) HasChecksum() bool {
	return k.weights != nil
}

// IsZero returns true if this is the zero value (uninitialized).
func (k Kind) IsZero() bool {
	return k.mask == ""
}

// KindByType returns the built-in kind for the given type.
func KindByType(kindType KindType) (Kind, error) {
	switch kindType {
	case KindCEP:
		return CEP, nil
	case KindCPF:
		return CPF, nil
	case KindCNPJ:
		return CNPJ, nil
	default:
		return Kind{}, ErrInvalidKindType
	}
}

// Kinds returns every built-in kind in the order of KindTypes.
func Kinds() []Kind {
	return []Kind{CEP, CPF, CNPJ}
}

// CountPlaceholders returns how many digit slots the pattern has.
func CountPlaceholders(pattern string) int {
	return strings.Count(pattern, string(MaskPlaceholder))
}

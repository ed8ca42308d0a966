// Package domain defines the identifier kinds handled by the document module.
// A kind binds a punctuation mask, a fixed digit length and, optionally, the
// modulo-11 weights used to verify its two trailing check digits.
package domain

import (
	"strings"
)

// KindType names a supported identifier kind.
type KindType string

const (
	KindCEP  KindType = "cep"
	KindCPF  KindType = "cpf"
	KindCNPJ KindType = "cnpj"
)

// MaskPlaceholder marks a digit slot in a mask pattern. Every other rune of a
// pattern is a literal separator.
const MaskPlaceholder = '@'

// Built-in masks and digit lengths. Masks must stay bit-exact so previously
// formatted values keep parsing.
const (
	// CEPMask is the Brazilian postal code pattern (99.999-999).
	CEPMask = "@@.@@@-@@@"
	// CEPLength is the number of digits of a CEP.
	CEPLength = 8

	// CPFMask is the individual taxpayer ID pattern (999.999.999-99).
	CPFMask = "@@@.@@@.@@@-@@"
	// CPFLength is the number of digits of a CPF, check digits included.
	CPFLength = 11

	// CNPJMask is the legal entity taxpayer ID pattern (99.999.999/9999-99).
	CNPJMask = "@@.@@@.@@@/@@@@-@@"
	// CNPJLength is the number of digits of a CNPJ, check digits included.
	CNPJLength = 14
)

// CheckDigitCount is the number of trailing modulo-11 check digits.
const CheckDigitCount = 2

// Validate checks if the kind type is supported.
func (k KindType) Validate() error {
	switch k {
	case KindCEP, KindCPF, KindCNPJ:
		return nil
	default:
		return ErrInvalidKindType
	}
}

// String returns the string representation of the kind type.
func (k KindType) String() string {
	return string(k)
}

// Label returns the upper-case acronym used in messages (e.g. "CPF").
func (k KindType) Label() string {
	return strings.ToUpper(string(k))
}

// ParseKindType converts user input to a KindType. Matching ignores case and
// surrounding whitespace.
func ParseKindType(s string) (KindType, error) {
	kindType := KindType(strings.ToLower(strings.TrimSpace(s)))
	if err := kindType.Validate(); err != nil {
		return "", err
	}
	return kindType, nil
}

// KindTypes returns every supported kind type in a stable order.
func KindTypes() []KindType {
	return []KindType{KindCEP, KindCPF, KindCNPJ}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/documents/internal/errors"
)

func TestNewKind(t *testing.T) {
	tests := []struct {
		name        string
		mask        string
		length      int
		weights     []int
		expectedErr error
	}{
		{
			name:   "Success_MaskOnly",
			mask:   "@@-@@",
			length: 4,
		},
		{
			name:    "Success_WithWeights",
			mask:    "@@@-@@",
			length:  5,
			weights: []int{5, 4, 3, 2},
		},
		{
			name:        "Error_EmptyMask",
			mask:        "",
			length:      4,
			expectedErr: ErrInvalidPattern,
		},
		{
			name:        "Error_MaskWithoutPlaceholder",
			mask:        "99.999",
			length:      5,
			expectedErr: ErrInvalidPattern,
		},
		{
			name:        "Error_ZeroLength",
			mask:        "@@",
			length:      0,
			expectedErr: ErrInvalidKind,
		},
		{
			name:        "Error_LengthDiffersFromPlaceholders",
			mask:        "@@.@@",
			length:      5,
			expectedErr: ErrInvalidKind,
		},
		{
			name:        "Error_WrongWeightCount",
			mask:        "@@@-@@",
			length:      5,
			weights:     []int{4, 3, 2},
			expectedErr: ErrInvalidKind,
		},
		{
			name:        "Error_NonPositiveWeight",
			mask:        "@@@-@@",
			length:      5,
			weights:     []int{5, 0, 3, 2},
			expectedErr: ErrInvalidKind,
		},
		{
			name:        "Error_ChecksumKindTooShort",
			mask:        "@-@",
			length:      2,
			weights:     []int{2},
			expectedErr: ErrInvalidKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := NewKind(KindType("test"), tt.mask, tt.length, tt.weights)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
				assert.True(t, kind.IsZero())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.mask, kind.Mask())
			assert.Equal(t, tt.length, kind.Length())
			assert.Equal(t, tt.weights != nil, kind.HasChecksum())
		})
	}
}

func TestNewKind_CopiesWeights(t *testing.T) {
	weights := []int{5, 4, 3, 2}
	kind, err := NewKind(KindType("test"), "@@@-@@", 5, weights)
	require.NoError(t, err)

	weights[0] = 99
	assert.Equal(t, []int{5, 4, 3, 2}, kind.Weights())

	out := kind.Weights()
	out[1] = 99
	assert.Equal(t, []int{5, 4, 3, 2}, kind.Weights())
}

func TestMustKind_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustKind(KindType("test"), "no-placeholder", 3, nil)
	})
}

func TestBuiltInKinds(t *testing.T) {
	tests := []struct {
		name            string
		kind            Kind
		kindType        KindType
		mask            string
		length          int
		formattedLength int
		weights         []int
	}{
		{
			name:            "CEP",
			kind:            CEP,
			kindType:        KindCEP,
			mask:            "@@.@@@-@@@",
			length:          8,
			formattedLength: 10,
			weights:         nil,
		},
		{
			name:            "CPF",
			kind:            CPF,
			kindType:        KindCPF,
			mask:            "@@@.@@@.@@@-@@",
			length:          11,
			formattedLength: 14,
			weights:         []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2},
		},
		{
			name:            "CNPJ",
			kind:            CNPJ,
			kindType:        KindCNPJ,
			mask:            "@@.@@@.@@@/@@@@-@@",
			length:          14,
			formattedLength: 18,
			weights:         []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kindType, tt.kind.Type())
			assert.Equal(t, tt.mask, tt.kind.Mask())
			assert.Equal(t, tt.length, tt.kind.Length())
			assert.Equal(t, tt.formattedLength, tt.kind.FormattedLength())
			assert.Equal(t, tt.weights, tt.kind.Weights())
			assert.Equal(t, tt.weights != nil, tt.kind.HasChecksum())
		})
	}
}

func TestKindByType(t *testing.T) {
	for _, kindType := range KindTypes() {
		t.Run(kindType.String(), func(t *testing.T) {
			kind, err := KindByType(kindType)
			require.NoError(t, err)
			assert.Equal(t, kindType, kind.Type())
		})
	}

	t.Run("Error_Unknown", func(t *testing.T) {
		_, err := KindByType(KindType("nit"))
		assert.ErrorIs(t, err, ErrInvalidKindType)
	})
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, len(KindTypes()))
	for i, kindType := range KindTypes() {
		assert.Equal(t, kindType, kinds[i].Type())
	}
}

func TestCountPlaceholders(t *testing.T) {
	assert.Equal(t, 8, CountPlaceholders(CEPMask))
	assert.Equal(t, 11, CountPlaceholders(CPFMask))
	assert.Equal(t, 14, CountPlaceholders(CNPJMask))
	assert.Equal(t, 0, CountPlaceholders("99.999"))
	assert.Equal(t, 0, CountPlaceholders(""))
}

package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	documentDomain "github.com/allisson/documents/internal/document/domain"
)

func TestDocumentRules(t *testing.T) {
	tests := []struct {
		name      string
		rule      validation.Rule
		value     interface{}
		shouldErr bool
		errMsg    string
	}{
		{name: "cpf masked", rule: CPF, value: "998.352.292-60"},
		{name: "cpf raw", rule: CPF, value: "99835229260"},
		{name: "cpf number", rule: CPF, value: int64(99835229260)},
		{name: "cpf int", rule: CPF, value: 1234567890},
		{name: "cpf empty is left to Required", rule: CPF, value: ""},
		{name: "cpf invalid", rule: CPF, value: "998.352.291-60", shouldErr: true, errMsg: "must be a valid CPF"},
		{name: "cpf repeated", rule: CPF, value: int64(11111111111), shouldErr: true, errMsg: "must be a valid CPF"},
		{name: "cpf wrong type", rule: CPF, value: 1.5, shouldErr: true, errMsg: "must be a string or an integer"},
		{name: "cnpj masked", rule: CNPJ, value: "57.742.897/0001-46"},
		{name: "cnpj invalid", rule: CNPJ, value: "47.742.897/0001-46", shouldErr: true, errMsg: "must be a valid CNPJ"},
		{name: "cep any text", rule: CEP, value: "01.345-011"},
		{name: "cep blank", rule: CEP, value: "  ", shouldErr: true, errMsg: "must be a valid CEP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, tt.rule)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("required rejects empty", func(t *testing.T) {
		assert.Error(t, validation.Validate("", validation.Required, CPF))
	})
}

func TestDocument_CustomKind(t *testing.T) {
	kind := documentDomain.MustKind(documentDomain.KindType("test"), "@@@@-@@", 6, []int{6, 5, 4, 3, 2})
	rule := Document(kind)

	assert.Error(t, validation.Validate("1234-00", rule))
	assert.Contains(t, validation.Validate("1234-00", rule).Error(), "must be a valid TEST")
}

func TestKindType(t *testing.T) {
	tests := []struct {
		name      string
		value     interface{}
		shouldErr bool
	}{
		{name: "cep", value: "cep"},
		{name: "cpf kind type", value: documentDomain.KindCPF},
		{name: "cnpj", value: "cnpj"},
		{name: "empty is left to Required", value: ""},
		{name: "upper case is not normalized", value: "CPF", shouldErr: true},
		{name: "unknown", value: "rg", shouldErr: true},
		{name: "wrong type", value: 1, shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, KindType)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package validation

import (
	validation "github.com/jellydator/validation"

	documentDomain "github.com/allisson/documents/internal/document/domain"
	documentService "github.com/allisson/documents/internal/document/service"
)

// Document validates a string or integer value as a document of kind. Empty
// strings pass so Required decides whether the value is mandatory.
func Document(kind documentDomain.Kind) validation.Rule {
	doc := documentService.NewDocument(kind)
	label := kind.Type().Label()

	return validation.By(func(value interface{}) error {
		var valid bool
		switch v := value.(type) {
		case string:
			if v == "" {
				return nil
			}
			valid = doc.Validate(v)
		case int64:
			valid = doc.ValidateNumber(v)
		case int:
			valid = doc.ValidateNumber(int64(v))
		default:
			return validation.NewError("validation_document_type", "must be a string or an integer")
		}

		if !valid {
			return validation.NewError(
				"validation_document_"+kind.Type().String(),
				"must be a valid "+label,
			)
		}
		return nil
	})
}

// Rules for the built-in kinds.
var (
	CEP  = Document(documentDomain.CEP)
	CPF  = Document(documentDomain.CPF)
	CNPJ = Document(documentDomain.CNPJ)
)

// KindType validates that a string or KindType names a supported document kind.
var KindType = validation.By(func(value interface{}) error {
	var kindType documentDomain.KindType
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil
		}
		kindType = documentDomain.KindType(v)
	case documentDomain.KindType:
		if v == "" {
			return nil
		}
		kindType = v
	default:
		return validation.NewError("validation_kind_type", "must be a string")
	}

	if err := kindType.Validate(); err != nil {
		return validation.NewError("validation_kind_type", "must be one of cep, cpf, cnpj")
	}
	return nil
})

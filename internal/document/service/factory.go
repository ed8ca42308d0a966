package service

import (
	documentDomain "github.com/allisson/documents/internal/document/domain"
)

// NewDocumentByType returns the Document of a built-in kind type.
func NewDocumentByType(kindType documentDomain.KindType) (*Document, error) {
	kind, err := documentDomain.KindByType(kindType)
	if err != nil {
		return nil, err
	}
	return NewDocument(kind), nil
}

// NewDocumentGenerator creates the generator matching the kind checksum scheme.
func NewDocumentGenerator(kind documentDomain.Kind) DocumentGenerator {
	if kind.HasChecksum() {
		return NewModulo11Generator(kind)
	}
	return NewNumericGenerator(kind)
}

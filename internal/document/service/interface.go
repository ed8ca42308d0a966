// Package service implements the document engine: the mask engine, the
// modulo-11 checksum validator and the Document type that composes them for
// one identifier kind. It also provides random document generators.
package service

// DocumentGenerator defines the interface for random document generation.
// Generated values are raw digits that pass Document.Validate for their kind.
type DocumentGenerator interface {
	Generate() (string, error)
}

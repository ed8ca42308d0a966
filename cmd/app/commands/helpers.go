// Package commands contains CLI command implementations for the application.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	validation "github.com/jellydator/validation"

	documentDomain "github.com/allisson/documents/internal/document/domain"
	appValidation "github.com/allisson/documents/internal/validation"
)

// Output formats accepted by every command.
const (
	formatText = "text"
	formatJSON = "json"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// parseKind converts the --kind flag to a KindType.
// Returns an error if the kind is missing or unsupported.
func parseKind(kind string) (documentDomain.KindType, error) {
	normalized := strings.ToLower(strings.TrimSpace(kind))
	if err := validation.Validate(normalized, validation.Required, appValidation.KindType); err != nil {
		return "", appValidation.WrapValidationError(fmt.Errorf("kind: %w", err))
	}
	return documentDomain.ParseKindType(normalized)
}

// validateOutputFormat checks the --format flag.
func validateOutputFormat(format string) error {
	err := validation.Validate(format, validation.Required, validation.In(formatText, formatJSON))
	if err != nil {
		return appValidation.WrapValidationError(fmt.Errorf("format: %w", err))
	}
	return nil
}

// validateArgument applies rules to a positional argument named name.
func validateArgument(name, value string, rules ...validation.Rule) error {
	if err := validation.Validate(value, rules...); err != nil {
		return appValidation.WrapValidationError(fmt.Errorf("%s: %w", name, err))
	}
	return nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}

// writeResult writes text in text mode or v as JSON in json mode.
func writeResult(w io.Writer, format, text string, v any) error {
	if format == formatJSON {
		return writeJSON(w, v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	documentDomain "github.com/allisson/documents/internal/document/domain"
)

type kindOutput struct {
	Kind        string `json:"kind"`
	Mask        string `json:"mask"`
	Length      int    `json:"length"`
	HasChecksum bool   `json:"has_checksum"`
}

// RunListKinds prints the supported document kinds with their masks.
func RunListKinds(ctx context.Context, logger *slog.Logger, writer io.Writer, format string) error {
	if err := validateOutputFormat(format); err != nil {
		return err
	}

	kinds := documentDomain.Kinds()
	logger.Info("listing document kinds", slog.Int("count", len(kinds)))

	outputs := make([]kindOutput, 0, len(kinds))
	var b strings.Builder
	for _, kind := range kinds {
		outputs = append(outputs, kindOutput{
			Kind:        kind.Type().String(),
			Mask:        kind.Mask(),
			Length:      kind.Length(),
			HasChecksum: kind.HasChecksum(),
		})

		checksum := "no check digits"
		if kind.HasChecksum() {
			checksum = "modulo 11 check digits"
		}
		fmt.Fprintf(&b, "%s\t%s\t%d digits\t%s\n", kind.Type(), kind.Mask(), kind.Length(), checksum)
	}

	if format == formatJSON {
		return writeJSON(writer, outputs)
	}
	_, err := io.WriteString(writer, b.String())
	return err
}

package exporter

import (
	"fmt"
	"io"

	"github.com/badele/ansideco/internal/types"
)

// ExportPlainText writes the cleaned text without styles.
func ExportPlainText(w io.Writer, result types.Result) error {
	if _, err := io.WriteString(w, result.Text); err != nil {
		return fmt.Errorf("error writing plain text: %w", err)
	}
	return nil
}

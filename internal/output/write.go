package output

import (
	"fmt"
	"io"
)

// Write dispatches on a normalised output format (see config.NormalizeOutput).
func Write(w io.Writer, format string, rows []Row, sel FieldSelection, opts TableOptions) error {
	switch format {
	case "", "table":
		return WriteTable(w, rows, sel, opts)
	case "json":
		return WriteJSON(w, rows)
	case "ndjson":
		return WriteNDJSON(w, rows)
	case "csv":
		return WriteCSV(w, rows, sel)
	case "md":
		return WriteMarkdownTable(w, rows, sel)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

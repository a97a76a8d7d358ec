package output

import (
	"encoding/csv"
	"io"
)

// WriteCSV renders rows as RFC 4180 compliant CSV (including CRLF endings).
// Multi-line content stays in one quoted cell.
func WriteCSV(w io.Writer, rows []Row, sel FieldSelection) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(Headers(sel.Fields)); err != nil {
		return err
	}
	for _, r := range rows {
		if err := writer.Write(RowValues(r, sel.Fields)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

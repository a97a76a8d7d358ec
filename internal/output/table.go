package output

import (
	"io"
	"strings"

	"github.com/phyten/commentx/internal/termcolor"
	"github.com/phyten/commentx/internal/textutil"
)

// TableOptions controls the human-readable table.
type TableOptions struct {
	// Truncate limits the content column to this many display cells; 0 means
	// no limit.
	Truncate int
	Painter  termcolor.Painter
}

// WriteTable renders rows as space-aligned columns. Widths are measured in
// display cells so CJK text and colour codes line up.
func WriteTable(w io.Writer, rows []Row, sel FieldSelection, opts TableOptions) error {
	headers := Headers(sel.Fields)
	cells := make([][]string, len(rows))
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = textutil.Width(h)
	}
	for r, row := range rows {
		values := RowValues(row, sel.Fields)
		for i, f := range sel.Fields {
			v := textutil.SingleLine(values[i])
			if f.Key == "content" {
				v = textutil.Truncate(v, opts.Truncate)
			}
			values[i] = v
			if cw := textutil.Width(v); cw > widths[i] {
				widths[i] = cw
			}
		}
		cells[r] = values
	}

	p := opts.Painter
	painted := make([]string, len(headers))
	for i, h := range headers {
		painted[i] = p.Header(h)
	}
	if err := writeTableLine(w, painted, sel.Fields, widths); err != nil {
		return err
	}
	for r, row := range rows {
		values := cells[r]
		for i, f := range sel.Fields {
			switch f.Key {
			case "kind":
				values[i] = p.Kind(row.Region, values[i])
			case "location", "line", "col", "end", "start", "length":
				values[i] = p.Location(values[i])
			}
		}
		if err := writeTableLine(w, values, sel.Fields, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeTableLine(w io.Writer, values []string, fields []Field, widths []int) error {
	var b strings.Builder
	last := len(values) - 1
	for i, v := range values {
		switch {
		case fields[i].Numeric:
			b.WriteString(textutil.PadLeft(v, widths[i]))
		case i == last:
			b.WriteString(v)
		default:
			b.WriteString(textutil.PadRight(v, widths[i]))
		}
		if i != last {
			b.WriteString("  ")
		}
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

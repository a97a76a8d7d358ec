package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phyten/commentx/internal/model"
)

// Row is one extracted comment together with where it came from.
type Row struct {
	File     string `json:"file,omitempty"`
	Language string `json:"language,omitempty"`
	model.ExtractedComment
}

type Field struct {
	Key    string
	Header string
	// Numeric columns are right-aligned in tables.
	Numeric bool
}

type FieldSelection struct {
	Fields []Field
}

var fieldRegistry = map[string]Field{
	"file":         {Key: "file", Header: "FILE"},
	"language":     {Key: "language", Header: "LANGUAGE"},
	"location":     {Key: "location", Header: "LOCATION"},
	"line":         {Key: "line", Header: "LINE", Numeric: true},
	"col":          {Key: "col", Header: "COL", Numeric: true},
	"end":          {Key: "end", Header: "END"},
	"start":        {Key: "start", Header: "START", Numeric: true},
	"length":       {Key: "length", Header: "LENGTH", Numeric: true},
	"kind":         {Key: "kind", Header: "KIND"},
	"unterminated": {Key: "unterminated", Header: "UNTERMINATED"},
	"content":      {Key: "content", Header: "CONTENT"},
}

var fieldAliases = map[string]string{
	"lang":   "language",
	"loc":    "location",
	"column": "col",
	"offset": "start",
	"len":    "length",
	"type":   "kind",
	"text":   "content",
}

// DefaultFields is used when no field list is configured.
const DefaultFields = "location,kind,content"

// ResolveFields parses a comma-separated field list. An empty list selects
// DefaultFields, plus "file" when withFile is set.
func ResolveFields(raw string, withFile bool) (FieldSelection, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultFields
		if withFile {
			raw = "file," + raw
		}
	}
	parts := strings.Split(raw, ",")
	sel := FieldSelection{Fields: make([]Field, 0, len(parts))}
	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			return FieldSelection{}, fmt.Errorf("invalid fields: empty entry")
		}
		if alias, ok := fieldAliases[name]; ok {
			name = alias
		}
		f, ok := fieldRegistry[name]
		if !ok {
			return FieldSelection{}, fmt.Errorf("unknown field: %s", strings.TrimSpace(part))
		}
		sel.Fields = append(sel.Fields, f)
	}
	return sel, nil
}

func Headers(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Header
	}
	return out
}

func RowValues(r Row, fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = formatFieldValue(r, f.Key)
	}
	return out
}

func formatFieldValue(r Row, key string) string {
	switch key {
	case "file":
		return r.File
	case "language":
		return r.Language
	case "location":
		return fmt.Sprintf("%d:%d", r.Span.StartLine, r.Span.StartCol)
	case "line":
		return strconv.Itoa(r.Span.StartLine)
	case "col":
		return strconv.Itoa(r.Span.StartCol)
	case "end":
		return fmt.Sprintf("%d:%d", r.Span.EndLine, r.Span.EndCol)
	case "start":
		return strconv.Itoa(r.Region.Start)
	case "length":
		return strconv.Itoa(r.Region.Length)
	case "kind":
		return string(r.Region.Kind)
	case "unterminated":
		return strconv.FormatBool(r.Region.Unterminated)
	case "content":
		return r.Content
	default:
		return ""
	}
}

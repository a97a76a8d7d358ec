package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phyten/commentx/internal/model"
	"github.com/phyten/commentx/internal/termcolor"
)

var sampleRows = []Row{
	{
		File:     "main.go",
		Language: "go",
		ExtractedComment: model.ExtractedComment{
			Content: "Hello greets.",
			Region:  model.Region{Start: 14, Length: 16, Kind: model.RegionLine},
			Span:    model.Span{StartLine: 3, StartCol: 1, EndLine: 3, EndCol: 17, ByteStart: 14, ByteEnd: 30},
		},
	},
	{
		File:     "main.go",
		Language: "go",
		ExtractedComment: model.ExtractedComment{
			Content: "multi \"quoted\"\nline | pipe <x>",
			Region:  model.Region{Start: 40, Length: 30, Kind: model.RegionBlock, Unterminated: true},
			Span:    model.Span{StartLine: 5, StartCol: 3, EndLine: 6, EndCol: 10, ByteStart: 40, ByteEnd: 70},
		},
	},
}

func TestResolveFields(t *testing.T) {
	tests := []struct {
		raw      string
		withFile bool
		want     []string
		wantErr  bool
	}{
		{raw: "", want: []string{"LOCATION", "KIND", "CONTENT"}},
		{raw: "", withFile: true, want: []string{"FILE", "LOCATION", "KIND", "CONTENT"}},
		{raw: "loc, type ,text", want: []string{"LOCATION", "KIND", "CONTENT"}},
		{raw: "LINE,col,len", want: []string{"LINE", "COL", "LENGTH"}},
		{raw: "kind,,content", wantErr: true},
		{raw: "author", wantErr: true},
	}
	for _, tt := range tests {
		sel, err := ResolveFields(tt.raw, tt.withFile)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ResolveFields(%q) expected error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ResolveFields(%q) failed: %v", tt.raw, err)
		}
		got := Headers(sel.Fields)
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Fatalf("ResolveFields(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestRowValues(t *testing.T) {
	sel, err := ResolveFields("file,language,location,end,start,length,kind,unterminated", false)
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	got := strings.Join(RowValues(sampleRows[1], sel.Fields), ",")
	want := "main.go,go,5:3,6:10,40,30,block,true"
	if got != want {
		t.Fatalf("RowValues = %q, want %q", got, want)
	}
}

func TestWriteCSV(t *testing.T) {
	sel, err := ResolveFields("file,location,kind,unterminated,content", false)
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRows, sel); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	assertGolden(t, "want-csv.csv", buf.String())
	if !strings.Contains(buf.String(), "\r\n") {
		t.Fatal("CSV output should use CRLF line endings")
	}
}

func TestWriteNDJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNDJSON(&buf, sampleRows); err != nil {
		t.Fatalf("WriteNDJSON failed: %v", err)
	}
	output := buf.String()
	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	if len(lines) != len(sampleRows) {
		t.Fatalf("expected %d lines, got %d", len(sampleRows), len(lines))
	}
	for i, line := range lines {
		var row Row
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			t.Fatalf("failed to decode line %d: %v", i, err)
		}
		if row.Content != sampleRows[i].Content {
			t.Fatalf("line %d content = %q", i, row.Content)
		}
	}
	if strings.Contains(output, "\\u003c") {
		t.Fatal("HTML characters should not be escaped in NDJSON output")
	}
	assertGolden(t, "want-ndjson.ndjson", output)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if buf.String() != "[]\n" {
		t.Fatalf("empty JSON = %q, want []", buf.String())
	}

	buf.Reset()
	if err := WriteJSON(&buf, sampleRows); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	var rows []Row
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(rows) != 2 || !rows[1].Region.Unterminated || rows[1].Span.EndLine != 6 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestWriteMarkdownTable(t *testing.T) {
	sel, err := ResolveFields("location,kind,line,content", false)
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteMarkdownTable(&buf, sampleRows, sel); err != nil {
		t.Fatalf("WriteMarkdownTable failed: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "multi \"quoted\"<br>line") {
		t.Fatal("expected newline conversion to <br> in markdown output")
	}
	if !strings.Contains(output, "line \\| pipe") {
		t.Fatal("expected pipe characters to be escaped in markdown output")
	}
	assertGolden(t, "want-md.md", output)
}

func TestWriteTable(t *testing.T) {
	sel, err := ResolveFields("", false)
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteTable(&buf, sampleRows, sel, TableOptions{}); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}
	assertGolden(t, "want-table.txt", buf.String())
}

func TestWriteTableTruncateAndNumeric(t *testing.T) {
	sel, err := ResolveFields("start,content", false)
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteTable(&buf, sampleRows, sel, TableOptions{Truncate: 8}); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}
	want := "START  CONTENT\n" +
		"   14  Hello g…\n" +
		"   40  multi \"…\n"
	if buf.String() != want {
		t.Fatalf("table mismatch:\n%s", diffStrings(want, buf.String()))
	}
}

func TestWriteTableColor(t *testing.T) {
	sel, err := ResolveFields("location,kind,content", false)
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	env := map[string]string{"TERM": "xterm"}
	painter := termcolor.NewPainter(termcolor.ModeAlways, &bytes.Buffer{}, env)
	var buf bytes.Buffer
	if err := WriteTable(&buf, sampleRows, sel, TableOptions{Painter: painter}); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected ANSI sequences, got %q", out)
	}
	// Padding is measured on visible width, so stripping colour gives the
	// plain layout back.
	var plain bytes.Buffer
	if err := WriteTable(&plain, sampleRows, sel, TableOptions{}); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}
	if stripped := stripSGR(out); stripped != plain.String() {
		t.Fatalf("coloured layout differs:\n%s", diffStrings(plain.String(), stripped))
	}
}

func TestWriteDispatch(t *testing.T) {
	sel, _ := ResolveFields("", false)
	for _, format := range []string{"", "table", "json", "ndjson", "csv", "md"} {
		var buf bytes.Buffer
		if err := Write(&buf, format, sampleRows, sel, TableOptions{}); err != nil {
			t.Fatalf("Write(%q) failed: %v", format, err)
		}
		if buf.Len() == 0 {
			t.Fatalf("Write(%q) produced no output", format)
		}
	}
	if err := Write(&bytes.Buffer{}, "yaml", sampleRows, sel, TableOptions{}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func stripSGR(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name)
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", name, err)
	}
	if diff := diffStrings(string(want), got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func diffStrings(want, got string) string {
	if want == got {
		return ""
	}
	var buf strings.Builder
	buf.WriteString("want:\n")
	buf.WriteString(want)
	if !strings.HasSuffix(want, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString("got:\n")
	buf.WriteString(got)
	return buf.String()
}

package engine

import (
	"testing"

	"github.com/phyten/commentx/internal/model"
	"github.com/phyten/commentx/internal/syntax"
)

func TestExtractSpans(t *testing.T) {
	sx := mustSyntax(t, "go")
	text := "package main\n\n// Hello greets.\nfunc Hello() {} /* inline */\n"
	got := Extract(text, sx, 0)
	if len(got) != 2 {
		t.Fatalf("expected 2 comments, got %+v", got)
	}
	first := got[0]
	if first.Content != "Hello greets." {
		t.Fatalf("unexpected content %q", first.Content)
	}
	wantSpan := model.Span{StartLine: 3, StartCol: 1, EndLine: 3, EndCol: 17, ByteStart: 14, ByteEnd: 30}
	if first.Span != wantSpan {
		t.Fatalf("span=%+v want %+v", first.Span, wantSpan)
	}
	second := got[1]
	if second.Content != "inline" || second.Span.StartLine != 4 || second.Span.StartCol != 17 {
		t.Fatalf("unexpected second comment %+v", second)
	}
}

func TestExtractOffsetKeepsSpansRelative(t *testing.T) {
	sx := mustSyntax(t, "python")
	text := "x = 1\n# note"
	got := Extract(text, sx, 500)
	if len(got) != 1 {
		t.Fatalf("expected 1 comment, got %+v", got)
	}
	if got[0].Region.Start != 506 {
		t.Fatalf("region start=%d want 506", got[0].Region.Start)
	}
	if got[0].Span.StartLine != 2 || got[0].Span.ByteStart != 6 {
		t.Fatalf("span should be relative to text, got %+v", got[0].Span)
	}
	if got[0].Content != "note" {
		t.Fatalf("content=%q", got[0].Content)
	}
}

func TestExtractNoComments(t *testing.T) {
	if got := Extract("a := b", mustSyntax(t, "go"), 0); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestPrepareSelection(t *testing.T) {
	cs := mustSyntax(t, "csharp")
	unsupported, _ := syntax.Lookup("Plain Text")
	cases := []struct {
		name      string
		raw       string
		sx        syntax.Syntax
		opts      Options
		want      string
		pure      bool
		supported bool
	}{
		{
			name:      "two line comments",
			raw:       "  // line one\n// line two\n",
			sx:        cs,
			want:      "line one\nline two",
			pure:      true,
			supported: true,
		},
		{
			name:      "custom separator",
			raw:       "// a\n// b",
			sx:        cs,
			opts:      Options{Separator: " "},
			want:      "a b",
			pure:      true,
			supported: true,
		},
		{
			name:      "doc block",
			raw:       "/// <summary>\n/// Adds numbers.\n/// </summary>",
			sx:        cs,
			want:      "<summary>\nAdds numbers.\n</summary>",
			pure:      true,
			supported: true,
		},
		{
			name:      "empty comments skipped",
			raw:       "//\n// text\n/**/",
			sx:        cs,
			want:      "text",
			pure:      true,
			supported: true,
		},
		{
			name:      "mixed code is raw",
			raw:       "  int x = 1; // counter  ",
			sx:        cs,
			want:      "int x = 1; // counter",
			supported: true,
		},
		{
			name: "unsupported is raw",
			raw:  "# not parsed\n",
			sx:   unsupported,
			want: "# not parsed",
		},
		{
			name:      "blank",
			raw:       " \n\t ",
			sx:        cs,
			want:      "",
			supported: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sel := PrepareSelection(tc.raw, tc.sx, tc.opts)
			if sel.Text != tc.want {
				t.Fatalf("Text=%q want %q", sel.Text, tc.want)
			}
			if sel.PureComment != tc.pure {
				t.Fatalf("PureComment=%v want %v", sel.PureComment, tc.pure)
			}
			if sel.Supported != tc.supported {
				t.Fatalf("Supported=%v want %v", sel.Supported, tc.supported)
			}
			if !tc.pure && len(sel.Comments) != 0 {
				t.Fatalf("non-pure selection should not carry comments: %+v", sel.Comments)
			}
		})
	}
}

func TestLineColFromOffset(t *testing.T) {
	offsets := computeLineOffsets("ab\ncd\n")
	cases := []struct {
		offset, line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{5, 2, 3},
		{6, 3, 1},
	}
	for _, tc := range cases {
		line, col := lineColFromOffset(tc.offset, offsets)
		if line != tc.line || col != tc.col {
			t.Fatalf("offset %d: got %d:%d want %d:%d", tc.offset, line, col, tc.line, tc.col)
		}
	}
}

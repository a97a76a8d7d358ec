package engine

import (
	"sort"
	"strings"

	"github.com/phyten/commentx/internal/model"
	"github.com/phyten/commentx/internal/syntax"
)

// Options は選択範囲の整形オプションです。
type Options struct {
	// Separator はコメント本文を連結する文字列です（既定は "\n"）。
	Separator string
}

// Selection はホストが翻訳サービスへ渡すテキストを表します。
type Selection struct {
	Text        string                   `json:"text"`
	Language    string                   `json:"language,omitempty"`
	Supported   bool                     `json:"supported"`
	PureComment bool                     `json:"pure_comment"`
	Comments    []model.ExtractedComment `json:"comments,omitempty"`
}

// Extract scans text and normalizes every region it finds.
func Extract(text string, sx syntax.Syntax, offset int) []model.ExtractedComment {
	regions := Scan(text, sx, offset)
	if len(regions) == 0 {
		return nil
	}
	return extractRegions(text, regions, sx, offset)
}

func extractRegions(text string, regions []model.Region, sx syntax.Syntax, offset int) []model.ExtractedComment {
	lineOffsets := computeLineOffsets(text)
	out := make([]model.ExtractedComment, 0, len(regions))
	for _, r := range regions {
		out = append(out, model.ExtractedComment{
			Content: ExtractContentAt(text, r, sx, offset),
			Region:  r,
			Span:    spanFromOffset(r.Start-offset, r.Length, lineOffsets),
		})
	}
	return out
}

// PrepareSelection turns an editor selection into the text to translate.
// The selection is trimmed; when it consists solely of comments the
// delimiter-stripped bodies are joined, otherwise the trimmed text is used
// verbatim. An unsupported syntax always yields the raw text.
func PrepareSelection(raw string, sx syntax.Syntax, opts Options) Selection {
	text := strings.TrimSpace(raw)
	sel := Selection{Text: text, Language: sx.Name(), Supported: sx.Supported()}
	if text == "" || !sel.Supported {
		return sel
	}
	regions := Scan(text, sx, 0)
	if !IsPureComment(text, regions, 0) {
		return sel
	}
	sep := opts.Separator
	if sep == "" {
		sep = "\n"
	}
	comments := extractRegions(text, regions, sx, 0)
	parts := make([]string, 0, len(comments))
	for _, c := range comments {
		if c.Content == "" {
			continue
		}
		parts = append(parts, c.Content)
	}
	sel.PureComment = true
	sel.Comments = comments
	sel.Text = strings.Join(parts, sep)
	return sel
}

func spanFromOffset(start, length int, lineOffsets []int) model.Span {
	line, col := lineColFromOffset(start, lineOffsets)
	endLine, endCol := lineColFromOffset(start+length, lineOffsets)
	return model.Span{
		StartLine: line,
		StartCol:  col,
		EndLine:   endLine,
		EndCol:    endCol,
		ByteStart: start,
		ByteEnd:   start + length,
	}
}

func lineColFromOffset(offset int, lineOffsets []int) (line, col int) {
	idx := sort.Search(len(lineOffsets), func(i int) bool { return lineOffsets[i] > offset })
	if idx == 0 {
		return 1, offset + 1
	}
	lineStart := lineOffsets[idx-1]
	return idx, offset - lineStart + 1
}

func computeLineOffsets(text string) []int {
	offsets := make([]int, 0, strings.Count(text, "\n")+1)
	offsets = append(offsets, 0)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

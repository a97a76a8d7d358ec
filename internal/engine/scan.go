package engine

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/phyten/commentx/internal/model"
	"github.com/phyten/commentx/internal/syntax"
)

// maxCharEscape bounds the search for the close of an escaped character
// literal such as '\u{10FFFF}'.
const maxCharEscape = 12

type tokenKind int

const (
	tokenLine tokenKind = iota
	tokenBlock
	tokenString
)

type opener struct {
	kind  tokenKind
	text  string
	block syntax.BlockPair
	str   syntax.StringRule
}

// scanner holds the openers of one syntax sorted longest first, so `"""`
// wins over `"` and `<!--` wins over `<`.
type scanner struct {
	openers []opener
	first   [256]bool
}

func newScanner(sx syntax.Syntax) *scanner {
	sc := &scanner{}
	for _, b := range sx.Blocks() {
		sc.openers = append(sc.openers, opener{kind: tokenBlock, text: b.Open, block: b})
	}
	for _, p := range sx.LinePrefixes() {
		sc.openers = append(sc.openers, opener{kind: tokenLine, text: p})
	}
	for _, s := range sx.Strings() {
		sc.openers = append(sc.openers, opener{kind: tokenString, text: s.Open, str: s})
	}
	sort.SliceStable(sc.openers, func(i, j int) bool {
		return len(sc.openers[i].text) > len(sc.openers[j].text)
	})
	for _, op := range sc.openers {
		if op.text != "" {
			sc.first[op.text[0]] = true
		}
	}
	return sc
}

func (sc *scanner) match(text string, pos int) (opener, bool) {
	if !sc.first[text[pos]] {
		return opener{}, false
	}
	rest := text[pos:]
	for _, op := range sc.openers {
		if op.text == "" || !strings.HasPrefix(rest, op.text) {
			continue
		}
		if op.kind == tokenBlock && op.block.AtLineStart && !atLineStart(text, pos) {
			continue
		}
		if op.kind == tokenString && op.str.Char && !closedCharLiteral(text, pos, op.str) {
			continue
		}
		return op, true
	}
	return opener{}, false
}

// ErrOffsetRange is returned by CheckOffset.
var ErrOffsetRange = errors.New("offset out of range")

// CheckOffset reports whether offset can shift positions of a text of
// textLen bytes without overflowing.
func CheckOffset(offset, textLen int) error {
	if offset < 0 || textLen < 0 || offset > math.MaxInt-textLen {
		return ErrOffsetRange
	}
	return nil
}

// Scan walks text once and returns the comment regions it contains, ordered
// by start and never overlapping. Region starts are shifted by offset. Text
// inside string literals is never reported. An unterminated block comment
// runs to the end of text and is flagged Unterminated. An offset rejected by
// CheckOffset yields no regions.
func Scan(text string, sx syntax.Syntax, offset int) []model.Region {
	if text == "" || !sx.Supported() || CheckOffset(offset, len(text)) != nil {
		return nil
	}
	sc := newScanner(sx)
	var regions []model.Region
	pos := 0
	for pos < len(text) {
		op, ok := sc.match(text, pos)
		if !ok {
			pos++
			continue
		}
		switch op.kind {
		case tokenString:
			pos = skipString(text, pos, op.str)
		case tokenLine:
			end := lineCommentEnd(text, pos)
			regions = append(regions, model.Region{Start: offset + pos, Length: end - pos, Kind: model.RegionLine})
			pos = end
		case tokenBlock:
			end, closed := blockCommentEnd(text, pos, op.block)
			regions = append(regions, model.Region{Start: offset + pos, Length: end - pos, Kind: model.RegionBlock, Unterminated: !closed})
			pos = end
		}
	}
	return regions
}

// skipString returns the position just past the literal opened at pos.
// Literals that are not multiline give up at the newline.
func skipString(text string, pos int, rule syntax.StringRule) int {
	i := pos + len(rule.Open)
	for i < len(text) {
		c := text[i]
		if rule.Escape != 0 && c == rule.Escape {
			i += 2
			continue
		}
		if strings.HasPrefix(text[i:], rule.Close) {
			return i + len(rule.Close)
		}
		if c == '\n' && !rule.Multiline {
			return i
		}
		i++
	}
	return len(text)
}

// closedCharLiteral reports whether a character literal opened at pos holds
// exactly one rune or one escape sequence before its close.
func closedCharLiteral(text string, pos int, rule syntax.StringRule) bool {
	i := pos + len(rule.Open)
	if i >= len(text) || text[i] == '\n' || strings.HasPrefix(text[i:], rule.Close) {
		return false
	}
	if rule.Escape != 0 && text[i] == rule.Escape {
		// '\n', '\x7f', '\u{1F600}'
		for j := i + 2; j <= i+maxCharEscape && j < len(text) && text[j] != '\n'; j++ {
			if strings.HasPrefix(text[j:], rule.Close) {
				return true
			}
		}
		return false
	}
	_, size := utf8.DecodeRuneInString(text[i:])
	return strings.HasPrefix(text[i+size:], rule.Close)
}

func lineCommentEnd(text string, pos int) int {
	nl := strings.IndexByte(text[pos:], '\n')
	if nl < 0 {
		return len(text)
	}
	end := pos + nl
	if end > pos && text[end-1] == '\r' {
		end--
	}
	return end
}

func blockCommentEnd(text string, pos int, block syntax.BlockPair) (int, bool) {
	depth := 1
	i := pos + len(block.Open)
	for i < len(text) {
		rest := text[i:]
		if block.Nested && strings.HasPrefix(rest, block.Open) {
			depth++
			i += len(block.Open)
			continue
		}
		if strings.HasPrefix(rest, block.Close) && (!block.AtLineStart || atLineStart(text, i)) {
			depth--
			i += len(block.Close)
			if depth == 0 {
				return i, true
			}
			continue
		}
		i++
	}
	return len(text), false
}

// atLineStart reports whether only spaces or tabs precede pos on its line.
func atLineStart(text string, pos int) bool {
	for i := pos - 1; i >= 0; i-- {
		switch text[i] {
		case ' ', '\t':
			continue
		case '\n':
			return true
		default:
			return false
		}
	}
	return true
}

// IsPureComment reports whether regions (as returned by Scan with the same
// offset) cover all of text, with nothing but whitespace between them.
func IsPureComment(text string, regions []model.Region, offset int) bool {
	if len(regions) == 0 || text == "" {
		return false
	}
	if regions[0].Start != offset || regions[len(regions)-1].End() != offset+len(text) {
		return false
	}
	for i := 1; i < len(regions); i++ {
		gap := text[regions[i-1].End()-offset : regions[i].Start-offset]
		if strings.TrimSpace(gap) != "" {
			return false
		}
	}
	return true
}

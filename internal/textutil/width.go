package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Ellipsis is appended by Truncate when text is cut.
const Ellipsis = "…"

// ANSI escape sequences (covers common CSI and OSC forms).
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

// StripANSI removes terminal escape sequences from s.
func StripANSI(s string) string {
	if s == "" || !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

// Width returns the terminal display width of s, ignoring escape sequences.
func Width(s string) int {
	if s == "" {
		return 0
	}
	width := 0
	g := uniseg.NewGraphemes(StripANSI(s))
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// Truncate cuts s to at most w display cells without splitting grapheme
// clusters, ending with Ellipsis when anything was dropped. w <= 0 means no
// limit.
func Truncate(s string, w int) string {
	if w <= 0 || Width(s) <= w {
		return s
	}
	return truncate(StripANSI(s), w, Ellipsis)
}

func truncate(s string, w int, ellipsis string) string {
	ellW := runewidth.StringWidth(ellipsis)
	if ellW > w {
		ellipsis, ellW = "", 0
	}
	limit := w - ellW
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		seg := g.Str()
		segW := runewidth.StringWidth(seg)
		if used+segW > limit {
			break
		}
		b.WriteString(seg)
		used += segW
	}
	return b.String() + ellipsis
}

// SingleLine folds multi-line comment content onto one line for tabular
// output: line breaks become " ⏎ ", tabs become spaces and other control
// characters (including escape sequences) are dropped.
func SingleLine(s string) string {
	s = StripANSI(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteString(" ⏎ ")
		case r == '\t':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f:
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PadRight pads s on the right with spaces so that the visible width equals w.
func PadRight(s string, w int) string {
	pad := w - Width(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// PadLeft pads s on the left with spaces so that the visible width equals w.
func PadLeft(s string, w int) string {
	pad := w - Width(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

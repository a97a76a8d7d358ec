package engine

import (
	"strings"

	"github.com/phyten/commentx/internal/model"
	"github.com/phyten/commentx/internal/syntax"
)

// ExtractContent returns the human-authored text of region r, which must come
// from a Scan of text with offset 0.
func ExtractContent(text string, r model.Region, sx syntax.Syntax) string {
	return ExtractContentAt(text, r, sx, 0)
}

// ExtractContentAt is ExtractContent for regions scanned with a non-zero
// offset. Out-of-range regions are clamped to text.
func ExtractContentAt(text string, r model.Region, sx syntax.Syntax, offset int) string {
	start := clamp(r.Start-offset, 0, len(text))
	end := clamp(r.End()-offset, start, len(text))
	raw := strings.ReplaceAll(text[start:end], "\r\n", "\n")
	var body string
	switch r.Kind {
	case model.RegionLine:
		body = stripLinePrefix(raw, sx.LinePrefixes())
	case model.RegionBlock:
		body = stripBlock(raw, sx.Blocks())
	default:
		body = raw
	}
	return strings.TrimSpace(body)
}

func stripLinePrefix(raw string, prefixes []string) string {
	trimmed := strings.TrimLeft(raw, " \t")
	best := ""
	for _, p := range prefixes {
		if len(p) > len(best) && strings.HasPrefix(trimmed, p) {
			best = p
		}
	}
	if best == "" {
		return raw
	}
	return trimmed[len(best):]
}

func stripBlock(raw string, blocks []syntax.BlockPair) string {
	trimmed := strings.TrimSpace(raw)
	var bp syntax.BlockPair
	for _, b := range blocks {
		if len(b.Open) > len(bp.Open) && strings.HasPrefix(trimmed, b.Open) {
			bp = b
		}
	}
	if bp.Open == "" {
		return raw
	}
	inner := trimmed[len(bp.Open):]
	if len(inner) >= len(bp.Close) && strings.HasSuffix(inner, bp.Close) {
		inner = inner[:len(inner)-len(bp.Close)]
	}

	// Decorated openers and closers such as "/**", "/*!" and " **/". A run
	// touching the body text ("/**p", "x**/") is part of the body.
	if lead := bp.Open[len(bp.Open)-1]; isDecoration(lead) {
		inner = trimDecorationPrefix(inner, lead)
	}
	if bp.Open == "/*" {
		inner = trimDecorationPrefix(inner, '!')
	}
	if trail := bp.Close[0]; isDecoration(trail) {
		inner = trimDecorationSuffix(inner, trail)
	}

	lines := strings.Split(inner, "\n")
	if len(lines) == 1 {
		return inner
	}
	stripped := false
	for _, marker := range marginCandidates(bp) {
		if lines, stripped = stripMargin(lines, marker); stripped {
			break
		}
	}
	if !stripped {
		lines = dedent(lines)
	}
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	return strings.Join(lines, "\n")
}

func trimDecorationPrefix(s string, c byte) string {
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	if n == 0 || (n < len(s) && !isSpace(s[n])) {
		return s
	}
	return s[n:]
}

func trimDecorationSuffix(s string, c byte) string {
	n := 0
	for n < len(s) && s[len(s)-1-n] == c {
		n++
	}
	if n == 0 || (n < len(s) && !isSpace(s[len(s)-1-n])) {
		return s
	}
	return s[:len(s)-n]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func marginCandidates(bp syntax.BlockPair) []byte {
	var out []byte
	for _, c := range []byte{bp.Close[0], bp.Open[len(bp.Open)-1]} {
		if !isDecoration(c) {
			continue
		}
		if len(out) == 1 && out[0] == c {
			continue
		}
		out = append(out, c)
	}
	return out
}

// stripMargin removes a leading marker column ("*" in " * text") from every
// line after the first. It changes nothing unless every non-blank line carries
// the marker.
func stripMargin(lines []string, marker byte) ([]string, bool) {
	marked := 0
	for _, l := range lines[1:] {
		t := strings.TrimLeft(l, " \t")
		if t == "" {
			continue
		}
		if t[0] != marker {
			return lines, false
		}
		marked++
	}
	if marked == 0 {
		return lines, false
	}
	out := make([]string, len(lines))
	out[0] = lines[0]
	for i, l := range lines[1:] {
		t := strings.TrimLeft(l, " \t")
		if t != "" {
			t = strings.TrimPrefix(t[1:], " ")
		}
		out[i+1] = t
	}
	return out, true
}

func dedent(lines []string) []string {
	prefix := ""
	first := true
	for _, l := range lines[1:] {
		if strings.TrimSpace(l) == "" {
			continue
		}
		indent := l[:len(l)-len(strings.TrimLeft(l, " \t"))]
		if first {
			prefix = indent
			first = false
			continue
		}
		prefix = commonPrefix(prefix, indent)
	}
	if prefix == "" {
		return lines
	}
	out := make([]string, len(lines))
	out[0] = lines[0]
	for i, l := range lines[1:] {
		out[i+1] = strings.TrimPrefix(l, prefix)
	}
	return out
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

func isDecoration(c byte) bool {
	switch c {
	case '*', '#', '-', '=', '!', '/', '%', '|', '@':
		return true
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

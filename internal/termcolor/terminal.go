package termcolor

import (
	"strconv"
	"strings"
)

type colorDepth int

const (
	depth8 colorDepth = iota
	depth256
	depth24
)

// terminal is what the environment tells us about the display the
// comments are printed on.
type terminal struct {
	depth colorDepth
	light bool
}

func readTerminal(env map[string]string) terminal {
	get := func(k string) string { return strings.ToLower(strings.TrimSpace(env[k])) }
	var t terminal

	ct, termName := get("COLORTERM"), get("TERM")
	switch {
	case strings.Contains(ct, "truecolor"), strings.Contains(ct, "24bit"), strings.Contains(ct, "24-bit"):
		t.depth = depth24
	case strings.Contains(termName, "256color"):
		t.depth = depth256
	}

	// COMMENTX_THEME wins, then the background index of COLORFGBG, then
	// a TERM name mentioning "light". Dark otherwise.
	switch get("COMMENTX_THEME") {
	case "light":
		t.light = true
		return t
	case "dark":
		return t
	}
	if bg, ok := colorfgbgBackground(get("COLORFGBG")); ok {
		t.light = bg >= 7
		return t
	}
	t.light = strings.Contains(termName, "light")
	return t
}

// colorfgbgBackground reads the last non-empty field of "fg;bg" or
// "fg;default;bg".
func colorfgbgBackground(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	parts := strings.Split(raw, ";")
	for i := len(parts) - 1; i >= 0; i-- {
		field := strings.TrimSpace(parts[i])
		if field == "" {
			continue
		}
		bg, err := strconv.Atoi(field)
		return bg, err == nil && bg >= 0
	}
	return 0, false
}

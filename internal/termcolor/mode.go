package termcolor

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// ColorMode is the value of --color.
type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
	}
}

// EnvMap turns os.Environ() style entries into a lookup table.
func EnvMap(values []string) map[string]string {
	env := make(map[string]string, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		key, val, _ := strings.Cut(entry, "=")
		env[key] = val
	}
	return env
}

// wantsColor resolves mode for one stream. In auto mode the environment
// is consulted first (TERM=dumb, NO_COLOR and CLICOLOR=0 switch colour off,
// a non-zero CLICOLOR_FORCE or FORCE_COLOR switches it on) and the TTY check
// decides the rest.
func wantsColor(mode ColorMode, out io.Writer, env map[string]string) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	if out == nil {
		return false
	}
	get := func(k string) string { return strings.TrimSpace(env[k]) }
	switch {
	case strings.EqualFold(get("TERM"), "dumb"), get("NO_COLOR") != "", get("CLICOLOR") == "0":
		return false
	case nonZero(get("CLICOLOR_FORCE")), nonZero(get("FORCE_COLOR")):
		return true
	}
	f, ok := out.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func nonZero(v string) bool { return v != "" && v != "0" }

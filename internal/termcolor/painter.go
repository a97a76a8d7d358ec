package termcolor

import (
	"io"

	"github.com/phyten/commentx/internal/model"
)

// Painter colours the cells of one output stream. The zero value paints
// nothing.
type Painter struct {
	on   bool
	term terminal
}

// NewPainter resolves mode against out and env once so every cell of a
// table is coloured consistently.
func NewPainter(mode ColorMode, out io.Writer, env map[string]string) Painter {
	if !wantsColor(mode, out, env) {
		return Painter{}
	}
	return Painter{on: true, term: readTerminal(env)}
}

func (p Painter) Enabled() bool { return p.on }

func (p Painter) Header(text string) string { return p.paint(roleHeader, text) }

// Location is used for line:col and offsets.
func (p Painter) Location(text string) string { return p.paint(roleLocation, text) }

func (p Painter) Kind(r model.Region, text string) string { return p.paint(roleOf(r), text) }

func (p Painter) paint(ro role, text string) string {
	if !p.on || text == "" {
		return text
	}
	code := p.term.sgr(ro)
	if code == "" {
		return text
	}
	return "\x1b[" + code + "m" + text + "\x1b[0m"
}

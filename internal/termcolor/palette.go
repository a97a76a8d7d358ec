package termcolor

import (
	"fmt"

	"github.com/phyten/commentx/internal/colorutil"
	"github.com/phyten/commentx/internal/model"
)

// role is what a painted cell shows.
type role int

const (
	roleNone role = iota
	roleHeader
	roleLocation
	roleLine
	roleBlock
	roleUnterminated
)

// roleOf maps a region to its colour. Unterminated blocks are flagged
// whatever their kind.
func roleOf(r model.Region) role {
	switch {
	case r.Unterminated:
		return roleUnterminated
	case r.Kind == model.RegionLine:
		return roleLine
	case r.Kind == model.RegionBlock:
		return roleBlock
	}
	return roleNone
}

var (
	darkBackground  = colorutil.RGB{R: 17, G: 24, B: 39}
	lightBackground = colorutil.RGB{R: 249, G: 250, B: 251}
)

// swatch is one comment colour: the 8-colour index and the RGB value used
// on richer terminals before contrast adjustment.
type swatch struct {
	basic int
	rgb   colorutil.RGB
}

var swatches = map[role]swatch{
	roleLine:         {2, colorutil.RGB{R: 74, G: 222, B: 128}},
	roleBlock:        {6, colorutil.RGB{R: 34, G: 211, B: 238}},
	roleUnterminated: {1, colorutil.RGB{R: 248, G: 113, B: 113}},
}

// sgr returns the parameter string for ro on t, or "" for no styling.
func (t terminal) sgr(ro role) string {
	switch ro {
	case roleHeader:
		return "1;4"
	case roleLocation:
		return "2"
	}
	sw, ok := swatches[ro]
	if !ok {
		return ""
	}
	prefix := ""
	if ro == roleUnterminated {
		prefix = "1;"
	}
	if t.depth == depth8 {
		return fmt.Sprintf("%s3%d", prefix, sw.basic)
	}
	c := colorutil.EnsureContrast(sw.rgb, t.background(), 4.5)
	if t.depth == depth256 {
		return fmt.Sprintf("%s38;5;%d", prefix, rgbToANSI256(c.R, c.G, c.B))
	}
	return fmt.Sprintf("%s38;2;%d;%d;%d", prefix, c.R, c.G, c.B)
}

func (t terminal) background() colorutil.RGB {
	if t.light {
		return lightBackground
	}
	return darkBackground
}

func rgbToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return 232 + (int(r)-8)*24/247
	}
	return 16 + 36*(int(r)*5/255) + 6*(int(g)*5/255) + int(b)*5/255
}

package colorutil

import "math"

type RGB struct {
	R uint8
	G uint8
	B uint8
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance is the WCAG relative luminance of c.
func Luminance(c RGB) float64 {
	r := srgbToLinear(float64(c.R) / 255.0)
	g := srgbToLinear(float64(c.G) / 255.0)
	b := srgbToLinear(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func ContrastRatio(fg, bg RGB) float64 {
	l1 := Luminance(fg)
	l2 := Luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// AutoTextColor picks black or white, whichever reads better on bg.
func AutoTextColor(bg RGB) RGB {
	crBlack := ContrastRatio(Black, bg)
	crWhite := ContrastRatio(White, bg)
	if crBlack >= 4.5 || crBlack >= crWhite {
		return Black
	}
	return White
}

// Mix blends a toward b; t=0 is a, t=1 is b.
func Mix(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ch := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return RGB{ch(a.R, b.R), ch(a.G, b.G), ch(a.B, b.B)}
}

// EnsureContrast returns fg unchanged when it already meets minRatio against
// bg. Otherwise it is shifted toward black or white in small steps so the
// hue survives as long as possible.
func EnsureContrast(fg, bg RGB, minRatio float64) RGB {
	if minRatio <= 0 {
		minRatio = 4.5
	}
	if ContrastRatio(fg, bg) >= minRatio {
		return fg
	}
	target := AutoTextColor(bg)
	for step := 1; step <= 10; step++ {
		candidate := Mix(fg, target, float64(step)/10)
		if ContrastRatio(candidate, bg) >= minRatio {
			return candidate
		}
	}
	return target
}

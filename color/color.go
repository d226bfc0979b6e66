// Package color holds the canonical RGB triplet the gradient engine
// interpolates over, plus parsing from the textual forms callers write
// (palette names, hex strings, rgb() triplets). Every source representation
// is normalized to the triplet before any blending happens; interpolation
// never touches the textual form.
package color

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a resolved 24-bit RGB triplet.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex renders the color as a lowercase #rrggbb string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Lerp linearly interpolates between a and b in RGB space. t is clamped to
// [0,1].
func Lerp(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return fromColorful(a.colorful().BlendRgb(b.colorful(), t))
}

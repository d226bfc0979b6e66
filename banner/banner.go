// Package banner renders figlet-style ASCII-art text and feeds it through the
// gradient engine. Font lookup and glyph generation belong entirely to
// go-figure; this package only trims the result and colors it.
package banner

import (
	"fmt"
	"strings"

	"github.com/common-nighthawk/go-figure"

	"github.com/ksokolowski/StyledConsole-sub001/capability"
	"github.com/ksokolowski/StyledConsole-sub001/effect"
)

// DefaultFont is used when the caller does not name one.
const DefaultFont = "standard"

// Render draws msg as ASCII art in the given font and, when a gradient is
// supplied and the profile allows color, colorizes it. Unknown fonts fall
// back to the default rather than failing; a banner is decoration, not data.
func Render(msg, font string, gradient *effect.Spec, profile capability.Profile) ([]string, error) {
	if msg == "" {
		return nil, fmt.Errorf("banner: empty message")
	}
	if font == "" {
		font = DefaultFont
	}
	lines := figure.NewFigure(msg, font, false).Slicify()
	lines = trimBlank(lines)
	if gradient == nil {
		return lines, nil
	}
	return effect.Apply(lines, *gradient, nil, profile)
}

// trimBlank drops fully blank leading and trailing rows that some fonts emit.
func trimBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

// Package frame draws bordered panels around measured text. It is thin glue:
// all the column math lives in the text package and all the coloring in the
// effect package; frame only owns the border glyph catalog and the assembly
// order.
package frame

import (
	"fmt"

	"github.com/ksokolowski/StyledConsole-sub001/capability"
	"github.com/ksokolowski/StyledConsole-sub001/effect"
)

// Style is one border glyph set.
type Style struct {
	Name        string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

var styles = map[string]Style{
	"ascii":   {Name: "ascii", TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+", Horizontal: "-", Vertical: "|"},
	"single":  {Name: "single", TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘", Horizontal: "─", Vertical: "│"},
	"rounded": {Name: "rounded", TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯", Horizontal: "─", Vertical: "│"},
	"double":  {Name: "double", TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝", Horizontal: "═", Vertical: "║"},
	"heavy":   {Name: "heavy", TopLeft: "┏", TopRight: "┓", BottomLeft: "┗", BottomRight: "┛", Horizontal: "━", Vertical: "┃"},
}

// StyleByName looks up a border style from the catalog. When the profile
// forbids Unicode glyphs every lookup degrades to the ASCII set so alignment
// survives on dumb terminals.
func StyleByName(name string, profile capability.Profile) (Style, error) {
	if !profile.Unicode {
		return styles["ascii"], nil
	}
	s, ok := styles[name]
	if !ok {
		return Style{}, fmt.Errorf("frame: unknown border style %q", name)
	}
	return s, nil
}

// StyleNames lists the catalog in no particular order.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	return names
}

// GlyphSet returns the style's glyphs as a structural set for target
// filtering.
func (s Style) GlyphSet() effect.Glyphs {
	return effect.NewGlyphs(
		s.TopLeft, s.TopRight, s.BottomLeft, s.BottomRight, s.Horizontal, s.Vertical,
	)
}

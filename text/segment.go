// Package text is the measurement core of the renderer: it splits strings
// into user-perceived characters, resolves their terminal column widths under
// a capability profile, and provides column-exact padding and truncation that
// is safe to apply to strings already carrying color escape sequences.
package text

import (
	"github.com/rivo/uniseg"

	"github.com/ksokolowski/StyledConsole-sub001/ansi"
)

// Cluster is one user-perceived character: one or more Unicode scalars that
// render as a single glyph, or one complete escape sequence. Escape clusters
// are inherently zero-width and are never wrapped in color.
type Cluster struct {
	Text   string
	Escape bool
}

// Segment splits s into grapheme clusters. Escape sequences are lifted out as
// single opaque clusters; literal runs are segmented per UAX #29, so variation
// selectors, ZWJ joins, skin-tone modifiers and flag pairs extend the
// preceding cluster rather than starting a new one. The clusters partition s
// exactly: concatenating their Text fields reproduces the input.
func Segment(s string) []Cluster {
	if s == "" {
		return nil
	}
	var clusters []Cluster
	for _, tok := range ansi.Tokenize(s) {
		if tok.Escape {
			clusters = append(clusters, Cluster{Text: tok.Text, Escape: true})
			continue
		}
		rest := tok.Text
		state := -1
		for len(rest) > 0 {
			var g string
			g, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			clusters = append(clusters, Cluster{Text: g})
		}
	}
	return clusters
}

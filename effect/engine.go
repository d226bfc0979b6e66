// Copyright © 2025 StyledConsole contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: effect/engine.go
// Summary: Walks a measured text block and wraps eligible clusters in
//          truecolor SGR sequences according to a gradient spec.
// Usage: Final compositing step over finished (padded, bordered) lines.
// Notes: Colorization never changes measured column widths.

package effect

import (
	"fmt"
	"math"
	"strings"

	"github.com/ksokolowski/StyledConsole-sub001/ansi"
	"github.com/ksokolowski/StyledConsole-sub001/capability"
	"github.com/ksokolowski/StyledConsole-sub001/text"
)

// Glyphs is the structural-glyph set the target filter consults, keyed by
// cluster text. It is produced by the border catalog, not by this package.
type Glyphs map[string]struct{}

// NewGlyphs builds a glyph set from literal strings.
func NewGlyphs(glyphs ...string) Glyphs {
	set := make(Glyphs, len(glyphs))
	for _, g := range glyphs {
		set[g] = struct{}{}
	}
	return set
}

// Apply colorizes a block of lines according to spec. With color disabled in
// the profile the input is returned untouched. Escape clusters already in the
// input pass through unmodified and are never re-colored. Line count and the
// visual width of every line are preserved exactly.
func Apply(lines []string, spec Spec, structural Glyphs, profile capability.Profile) ([]string, error) {
	if spec.Source == SourceStops && len(spec.Stops) < 2 {
		return nil, fmt.Errorf("effect: spec has %d stops; use New or Linear", len(spec.Stops))
	}
	if spec.Target == TargetStructural && len(structural) == 0 {
		return nil, fmt.Errorf("effect: structural target filter with empty glyph set")
	}
	if !profile.Color {
		return lines, nil
	}

	measured := make([]text.MeasuredLine, len(lines))
	maxColumns := 0
	for i, line := range lines {
		measured[i] = text.Measure(line, profile)
		if n := measured[i].Columns(); n > maxColumns {
			maxColumns = n
		}
	}

	rows := len(lines)
	out := make([]string, rows)
	for r, line := range measured {
		var sb strings.Builder
		columns := line.Columns()
		c := 0
		for _, cell := range line.Cells {
			cluster := cell.Cluster
			if cluster.Escape {
				sb.WriteString(cluster.Text)
				continue
			}
			col := c
			c++
			if !spec.colorable(cluster.Text, structural) {
				sb.WriteString(cluster.Text)
				continue
			}
			t := spec.position(r, col, rows, columns, maxColumns)
			rgb := spec.colorAt(t)
			sb.WriteString(ansi.Foreground(rgb.R, rgb.G, rgb.B))
			sb.WriteString(cluster.Text)
			sb.WriteString(ansi.Reset)
		}
		out[r] = sb.String()
	}
	return out, nil
}

func (s Spec) colorable(cluster string, structural Glyphs) bool {
	_, isStructural := structural[cluster]
	switch s.Target {
	case TargetContent:
		return !isStructural
	case TargetStructural:
		return isStructural
	default:
		return true
	}
}

// position computes the normalized gradient position of the cluster at row r,
// colorable column col. Horizontal spans each line's own columns; diagonal
// spans the block's widest line so the sweep angle is uniform.
func (s Spec) position(r, col, rows, columns, maxColumns int) float64 {
	var t float64
	switch s.Direction {
	case Vertical:
		t = float64(r) / float64(max(rows-1, 1))
	case Horizontal:
		t = float64(col) / float64(max(columns-1, 1))
	case Diagonal:
		t = float64(r+col) / float64(max(rows+maxColumns-2, 1))
	}
	if s.Offset != 0 {
		t = math.Mod(t+s.Offset, 1)
	}
	return t
}

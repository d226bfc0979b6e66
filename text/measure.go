package text

import "github.com/ksokolowski/StyledConsole-sub001/capability"

// MeasuredCell pairs a cluster with its resolved column width.
type MeasuredCell struct {
	Cluster Cluster
	Width   int
}

// MeasuredLine is a line segmented and width-resolved once, with the total
// column width cached. Layout and gradient application both consume this
// instead of re-deriving widths.
type MeasuredLine struct {
	Cells []MeasuredCell
	Total int
}

// Measure segments s and resolves every cluster width under profile.
func Measure(s string, profile capability.Profile) MeasuredLine {
	clusters := Segment(s)
	line := MeasuredLine{Cells: make([]MeasuredCell, 0, len(clusters))}
	for _, c := range clusters {
		w := ClusterWidth(c, profile)
		line.Cells = append(line.Cells, MeasuredCell{Cluster: c, Width: w})
		line.Total += w
	}
	return line
}

// Columns counts the colorable (non-escape) clusters of the line; gradient
// position math runs over these, not over raw cells.
func (l MeasuredLine) Columns() int {
	n := 0
	for _, cell := range l.Cells {
		if !cell.Cluster.Escape {
			n++
		}
	}
	return n
}

// LineWidth returns the visual column width of s under profile. Escape
// sequences contribute nothing.
func LineWidth(s string, profile capability.Profile) int {
	return Measure(s, profile).Total
}

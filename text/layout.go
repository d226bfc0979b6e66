package text

import (
	"fmt"
	"strings"

	"github.com/ksokolowski/StyledConsole-sub001/ansi"
	"github.com/ksokolowski/StyledConsole-sub001/capability"
)

// Align selects where padding is inserted relative to the text.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Pad widens s to width columns by inserting fill characters on the side(s)
// implied by align. For center alignment the odd filler column, if any, goes
// to the end side. Text already at or beyond the target width is returned
// unchanged; Pad never truncates. A negative width is a caller bug and is
// rejected.
func Pad(s string, width int, align Align, fill rune, profile capability.Profile) (string, error) {
	if width < 0 {
		return "", fmt.Errorf("pad: negative target width %d", width)
	}
	missing := width - LineWidth(s, profile)
	if missing <= 0 {
		return s, nil
	}
	switch align {
	case AlignStart:
		return s + strings.Repeat(string(fill), missing), nil
	case AlignEnd:
		return strings.Repeat(string(fill), missing) + s, nil
	case AlignCenter:
		lead := missing / 2
		return strings.Repeat(string(fill), lead) + s + strings.Repeat(string(fill), missing-lead), nil
	default:
		return "", fmt.Errorf("pad: unknown alignment %d", align)
	}
}

// Truncate shortens s to at most maxWidth columns, appending ellipsis when a
// cut is made. Widths are visual columns: escape sequences count for nothing
// and every escape sequence before the cut point is kept verbatim so color
// state carries through. If the cut lands while an SGR style is still open, a
// reset is appended after the ellipsis so color never bleeds past the line.
// Text that already fits is returned unchanged. A maxWidth smaller than the
// ellipsis itself produces an empty string.
func Truncate(s string, maxWidth int, ellipsis string, profile capability.Profile) (string, error) {
	if maxWidth < 0 {
		return "", fmt.Errorf("truncate: negative max width %d", maxWidth)
	}
	line := Measure(s, profile)
	if line.Total <= maxWidth {
		return s, nil
	}
	ellipsisWidth := LineWidth(ellipsis, profile)
	if maxWidth < ellipsisWidth || maxWidth == 0 {
		return "", nil
	}

	budget := maxWidth - ellipsisWidth
	var sb strings.Builder
	used := 0
	for _, cell := range line.Cells {
		if cell.Cluster.Escape {
			sb.WriteString(cell.Cluster.Text)
			continue
		}
		if used+cell.Width > budget {
			break
		}
		sb.WriteString(cell.Cluster.Text)
		used += cell.Width
	}
	sb.WriteString(ellipsis)
	if ansi.OpenStyle(sb.String()) {
		sb.WriteString(ansi.Reset)
	}
	return sb.String(), nil
}

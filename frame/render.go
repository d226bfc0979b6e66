package frame

import (
	"fmt"
	"strings"

	"github.com/ksokolowski/StyledConsole-sub001/capability"
	"github.com/ksokolowski/StyledConsole-sub001/effect"
	"github.com/ksokolowski/StyledConsole-sub001/text"
)

// Options configures one panel render.
type Options struct {
	// Style names a border set from the catalog; empty means "single".
	Style string
	// Title is embedded in the top border, truncated to fit.
	Title string
	// Width fixes the total frame width in columns, borders included; zero
	// sizes the frame to its widest content line.
	Width int
	// Align positions content lines inside the frame.
	Align text.Align
	// Padding is the number of blank columns between border and content.
	Padding int
	// Gradient, when set, is applied over the assembled panel as the final
	// step.
	Gradient *effect.Spec
}

// Render assembles a bordered panel around the given content lines. All
// measurement honors the profile, so a panel stays rectangular whatever mix
// of emoji, CJK and pre-colored text it contains.
func Render(lines []string, opts Options, profile capability.Profile) ([]string, error) {
	styleName := opts.Style
	if styleName == "" {
		styleName = "single"
	}
	style, err := StyleByName(styleName, profile)
	if err != nil {
		return nil, err
	}
	if opts.Padding < 0 {
		return nil, fmt.Errorf("frame: negative padding %d", opts.Padding)
	}

	ellipsis := "..."
	if profile.Unicode {
		ellipsis = "…"
	}

	inner := 0
	for _, line := range lines {
		if w := text.LineWidth(line, profile); w > inner {
			inner = w
		}
	}
	if opts.Width > 0 {
		inner = opts.Width - 2 - 2*opts.Padding
		if inner < 1 {
			return nil, fmt.Errorf("frame: width %d leaves no room for content", opts.Width)
		}
	}

	pad := strings.Repeat(" ", opts.Padding)
	span := inner + 2*opts.Padding

	out := make([]string, 0, len(lines)+2)
	out = append(out, topBorder(style, opts.Title, span, ellipsis, profile))
	for _, line := range lines {
		cell, err := text.Truncate(line, inner, ellipsis, profile)
		if err != nil {
			return nil, err
		}
		cell, err = text.Pad(cell, inner, opts.Align, ' ', profile)
		if err != nil {
			return nil, err
		}
		out = append(out, style.Vertical+pad+cell+pad+style.Vertical)
	}
	out = append(out, style.BottomLeft+strings.Repeat(style.Horizontal, span)+style.BottomRight)

	if opts.Gradient != nil {
		return effect.Apply(out, *opts.Gradient, style.GlyphSet(), profile)
	}
	return out, nil
}

func topBorder(style Style, title string, span int, ellipsis string, profile capability.Profile) string {
	if title == "" || span < 5 {
		return style.TopLeft + strings.Repeat(style.Horizontal, span) + style.TopRight
	}
	title, _ = text.Truncate(title, span-4, ellipsis, profile)
	rest := span - 3 - text.LineWidth(title, profile)
	return style.TopLeft + style.Horizontal + " " + title + " " + strings.Repeat(style.Horizontal, rest) + style.TopRight
}

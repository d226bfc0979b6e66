// Package export dumps finished ANSI blocks into static formats: plain text
// with escapes stripped, or standalone HTML with the truecolor runs turned
// into styled spans.
package export

import (
	"html"
	"strconv"
	"strings"

	"github.com/ksokolowski/StyledConsole-sub001/ansi"
	"github.com/ksokolowski/StyledConsole-sub001/color"
)

// Text strips every escape sequence and joins the lines.
func Text(lines []string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ansi.Strip(line)
	}
	return strings.Join(out, "\n")
}

// HTML renders the block as a <pre> element, translating truecolor SGR runs
// into <span style="color:..."> elements. Non-color escape sequences are
// dropped. The output is a fragment; callers embed it in their own document.
func HTML(lines []string) string {
	var sb strings.Builder
	sb.WriteString("<pre style=\"font-family:monospace\">\n")
	for _, line := range lines {
		writeHTMLLine(&sb, line)
		sb.WriteString("\n")
	}
	sb.WriteString("</pre>")
	return sb.String()
}

func writeHTMLLine(sb *strings.Builder, line string) {
	open := false
	for _, tok := range ansi.Tokenize(line) {
		if !tok.Escape {
			sb.WriteString(html.EscapeString(tok.Text))
			continue
		}
		if !ansi.IsSGR(tok) {
			continue
		}
		if ansi.IsReset(tok) {
			if open {
				sb.WriteString("</span>")
				open = false
			}
			continue
		}
		if c, ok := foregroundOf(tok); ok {
			if open {
				sb.WriteString("</span>")
			}
			sb.WriteString("<span style=\"color:" + c.Hex() + "\">")
			open = true
		}
	}
	if open {
		sb.WriteString("</span>")
	}
}

// foregroundOf extracts the RGB foreground from a 38;2;R;G;B SGR sequence.
func foregroundOf(tok ansi.Token) (color.Color, bool) {
	params := strings.Split(tok.Text[2:len(tok.Text)-1], ";")
	for i := 0; i+4 < len(params); i++ {
		if params[i] != "38" || params[i+1] != "2" {
			continue
		}
		r, errR := strconv.Atoi(params[i+2])
		g, errG := strconv.Atoi(params[i+3])
		b, errB := strconv.Atoi(params[i+4])
		if errR != nil || errG != nil || errB != nil {
			continue
		}
		if r < 0 || g < 0 || b < 0 || r > 255 || g > 255 || b > 255 {
			continue
		}
		return color.RGB(uint8(r), uint8(g), uint8(b)), true
	}
	return color.Color{}, false
}

// Package ansi is the escape-sequence surface of the renderer: truecolor SGR
// emission and a tolerant lexer that splits arbitrary strings into literal
// text runs and complete escape sequences.
package ansi

import "fmt"

// Reset clears all active SGR attributes.
const Reset = "\x1b[0m"

const esc = 0x1b

// Foreground returns the 24-bit SGR sequence selecting an RGB foreground.
func Foreground(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// Background returns the 24-bit SGR sequence selecting an RGB background.
func Background(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

package ansi

import "strings"

// Token is one lexed span of input: either a run of literal text or a single
// escape sequence. An unterminated trailing sequence is still reported as an
// escape token rather than an error; downstream code treats it as a zero-width
// opaque span.
type Token struct {
	Text   string
	Escape bool
}

type lexState int

const (
	stateGround lexState = iota
	stateEscape
	stateCSI
	stateOSC
	stateOSCEsc
	stateCharset
)

// Tokenize splits s into literal and escape tokens. Concatenating the tokens'
// Text fields in order reproduces s byte for byte.
func Tokenize(s string) []Token {
	if s == "" {
		return nil
	}
	var tokens []Token
	state := stateGround
	start := 0 // start of the span being accumulated

	flushLiteral := func(end int) {
		if end > start {
			tokens = append(tokens, Token{Text: s[start:end]})
		}
	}

	for i := 0; i < len(s); i++ {
		b := s[i]
		switch state {
		case stateGround:
			if b == esc {
				flushLiteral(i)
				start = i
				state = stateEscape
			}
		case stateEscape:
			switch b {
			case '[':
				state = stateCSI
			case ']':
				state = stateOSC
			case '(', ')':
				state = stateCharset
			default:
				// Two-byte sequence (ESC =, ESC >, ESC 7 and friends).
				tokens = append(tokens, Token{Text: s[start : i+1], Escape: true})
				start = i + 1
				state = stateGround
			}
		case stateCSI:
			// Parameter bytes 0x30-0x3f and intermediates 0x20-0x2f continue
			// the sequence; a final byte 0x40-0x7e ends it.
			if b >= 0x40 && b <= 0x7e {
				tokens = append(tokens, Token{Text: s[start : i+1], Escape: true})
				start = i + 1
				state = stateGround
			}
		case stateOSC:
			if b == 0x07 {
				tokens = append(tokens, Token{Text: s[start : i+1], Escape: true})
				start = i + 1
				state = stateGround
			} else if b == esc {
				state = stateOSCEsc
			}
		case stateOSCEsc:
			if b == '\\' {
				tokens = append(tokens, Token{Text: s[start : i+1], Escape: true})
				start = i + 1
				state = stateGround
			} else {
				state = stateOSC
			}
		case stateCharset:
			tokens = append(tokens, Token{Text: s[start : i+1], Escape: true})
			start = i + 1
			state = stateGround
		}
	}

	if start < len(s) {
		// Trailing literal run, or an unterminated sequence kept as-is.
		tokens = append(tokens, Token{Text: s[start:], Escape: state != stateGround})
	}
	return tokens
}

// Strip removes every escape sequence from s, keeping literal text only.
func Strip(s string) string {
	tokens := Tokenize(s)
	var sb strings.Builder
	sb.Grow(len(s))
	for _, tok := range tokens {
		if !tok.Escape {
			sb.WriteString(tok.Text)
		}
	}
	return sb.String()
}

// IsSGR reports whether tok is a complete SGR (select graphic rendition)
// sequence, i.e. a CSI sequence with final byte 'm'.
func IsSGR(tok Token) bool {
	t := tok.Text
	return tok.Escape && len(t) >= 3 && t[0] == esc && t[1] == '[' && t[len(t)-1] == 'm'
}

// IsReset reports whether tok is an SGR sequence that clears all attributes:
// CSI m with no parameters, or with every parameter equal to zero.
func IsReset(tok Token) bool {
	if !IsSGR(tok) {
		return false
	}
	params := tok.Text[2 : len(tok.Text)-1]
	if params == "" {
		return true
	}
	for _, p := range strings.Split(params, ";") {
		if p != "" && p != "0" && p != "00" {
			return false
		}
	}
	return true
}

// OpenStyle reports whether s ends with SGR state still applied: an SGR set
// was seen with no later reset. Truncation uses this to decide whether a
// trailing reset must be appended.
func OpenStyle(s string) bool {
	open := false
	for _, tok := range Tokenize(s) {
		if !IsSGR(tok) {
			continue
		}
		open = !IsReset(tok)
	}
	return open
}

// Package capability describes what the target terminal can render. A Profile
// is built once (detected or handed in by the caller) and threaded explicitly
// through every rendering call; nothing below this package inspects the
// environment.
package capability

// Profile holds the three independent rendering axes. The zero value is the
// most conservative profile: monochrome, ASCII borders, legacy emoji width.
type Profile struct {
	// Color permits ANSI color sequences in output.
	Color bool
	// Unicode permits box-drawing and other non-ASCII structural glyphs.
	Unicode bool
	// Emoji selects ligature-aware (ZWJ/flag/skin-tone) width resolution.
	// When false the legacy base-glyph strategy is used regardless of what
	// a caller asks for.
	Emoji bool
}

// Full returns a profile with every capability enabled.
func Full() Profile {
	return Profile{Color: true, Unicode: true, Emoji: true}
}

// Plain returns the zero profile: no color, ASCII glyphs, legacy widths.
func Plain() Profile {
	return Profile{}
}

// WithoutColor returns a copy of p with color output disabled.
func (p Profile) WithoutColor() Profile {
	p.Color = false
	return p
}

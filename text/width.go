package text

import (
	"github.com/mattn/go-runewidth"

	"github.com/ksokolowski/StyledConsole-sub001/capability"
)

const (
	runeZWJ       = 0x200D
	runeVS16      = 0xFE0F
	runeToneFirst = 0x1F3FB
	runeToneLast  = 0x1F3FF
	runeRIFirst   = 0x1F1E6
	runeRILast    = 0x1F1FF
)

// ClusterWidth resolves the column width of a single cluster: 0, 1 or 2.
// Escape clusters are always 0. With profile.Emoji unset the legacy strategy
// applies: only the cluster's first scalar counts, matching terminals that
// draw joined sequences no wider than their base glyph. With profile.Emoji
// set, known ligature-forming sequences resolve to a fixed 2 and everything
// else falls back to summing per-scalar East-Asian widths.
func ClusterWidth(c Cluster, profile capability.Profile) int {
	if c.Escape || c.Text == "" {
		return 0
	}
	if !profile.Emoji {
		return legacyWidth(c.Text)
	}
	return modernWidth(c.Text)
}

func legacyWidth(s string) int {
	for _, r := range s {
		return runewidth.RuneWidth(r)
	}
	return 0
}

func modernWidth(s string) int {
	runes := []rune(s)
	if ligature(runes) {
		return 2
	}
	return runewidth.StringWidth(s)
}

// ligature reports whether runes form a sequence the modern strategy pins to
// width 2: a flag (regional-indicator pair), an emoji ZWJ join, a skin-tone
// modified pictograph, or a VS16 emoji-presentation request. Multi-scalar
// clusters outside this table keep the per-scalar-sum fallback; they are not
// forced to 2.
func ligature(runes []rune) bool {
	if len(runes) < 2 {
		return false
	}
	if regionalIndicator(runes[0]) && regionalIndicator(runes[1]) {
		return true
	}
	if !pictographic(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		switch {
		case r == runeZWJ:
			return true
		case r >= runeToneFirst && r <= runeToneLast:
			return true
		case r == runeVS16:
			return true
		}
	}
	return false
}

func regionalIndicator(r rune) bool {
	return r >= runeRIFirst && r <= runeRILast
}

// pictographic approximates Extended_Pictographic over the blocks that
// actually carry emoji; precise membership is not required since non-members
// simply fall back to per-scalar widths.
func pictographic(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r >= 0x2300 && r <= 0x23FF:
		return true
	case r >= 0x2B00 && r <= 0x2BFF:
		return true
	case r == 0x203C || r == 0x2049 || r == 0x2122 || r == 0x2139:
		return true
	}
	return false
}

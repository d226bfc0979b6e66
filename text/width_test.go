package text

import (
	"testing"

	"github.com/ksokolowski/StyledConsole-sub001/capability"
)

var (
	legacy = capability.Profile{Color: true, Unicode: true}
	modern = capability.Full()
)

func TestClusterWidthEscapeIsZero(t *testing.T) {
	c := Cluster{Text: "\x1b[38;2;1;2;3m", Escape: true}
	if w := ClusterWidth(c, modern); w != 0 {
		t.Fatalf("escape cluster width = %d", w)
	}
}

func TestWidthCombiningAccent(t *testing.T) {
	// One cluster, one column, under both strategies.
	for _, p := range []capability.Profile{legacy, modern} {
		if w := LineWidth("é", p); w != 1 {
			t.Fatalf("width(e + combining acute) = %d (emoji=%v)", w, p.Emoji)
		}
	}
}

func TestWidthVariationSelector(t *testing.T) {
	// Warning sign + VS16: the legacy strategy sees only the base glyph; the
	// modern strategy treats the emoji-presentation request as a ligature.
	warning := "⚠️"
	if w := LineWidth(warning, legacy); w != 1 {
		t.Fatalf("legacy width = %d, want 1", w)
	}
	if w := LineWidth(warning, modern); w != 2 {
		t.Fatalf("modern width = %d, want 2", w)
	}
}

func TestWidthKnownLigatures(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"flag pair", "🇺🇸"},
		{"zwj family", "\U0001F468‍\U0001F469‍\U0001F467"},
		{"skin tone", "👍🏽"},
	}
	for _, tc := range cases {
		if w := LineWidth(tc.in, modern); w != 2 {
			t.Errorf("%s: modern width = %d, want 2", tc.name, w)
		}
	}
}

func TestWidthModernFallbackIsPerScalarSum(t *testing.T) {
	// A multi-scalar cluster outside the ligature table keeps the summed
	// width rather than being forced to 2.
	devanagari := "क्" // ka + virama, one cluster
	if n := len(Segment(devanagari)); n != 1 {
		t.Fatalf("expected one cluster, got %d", n)
	}
	if w := LineWidth(devanagari, modern); w != 1 {
		t.Fatalf("fallback width = %d, want 1", w)
	}
}

func TestWidthCJK(t *testing.T) {
	if w := LineWidth("混ぜ", modern); w != 4 {
		t.Fatalf("CJK width = %d, want 4", w)
	}
	if w := LineWidth("ＷＩＤＥ", legacy); w != 8 {
		t.Fatalf("fullwidth latin = %d, want 8", w)
	}
}

func TestLineWidthIgnoresEscapes(t *testing.T) {
	if w := LineWidth("\x1b[38;2;255;0;0mHello\x1b[0m", modern); w != 5 {
		t.Fatalf("colored width = %d, want 5", w)
	}
}

func TestLineWidthMatchesClusterSum(t *testing.T) {
	inputs := []string{"", "plain", "é日本👍🏽", "\x1b[31m混x\x1b[0m"}
	for _, p := range []capability.Profile{legacy, modern} {
		for _, in := range inputs {
			sum := 0
			for _, c := range Segment(in) {
				sum += ClusterWidth(c, p)
			}
			if got := LineWidth(in, p); got != sum {
				t.Fatalf("LineWidth(%q) = %d, cluster sum = %d", in, got, sum)
			}
		}
	}
}

package text

import (
	"testing"

	"github.com/ksokolowski/StyledConsole-sub001/capability"
)

func TestPadAlignments(t *testing.T) {
	p := capability.Full()
	cases := []struct {
		name  string
		in    string
		width int
		align Align
		want  string
	}{
		{"start", "AB", 5, AlignStart, "AB   "},
		{"end", "AB", 5, AlignEnd, "   AB"},
		{"center odd remainder goes right", "AB", 5, AlignCenter, " AB  "},
		{"center even", "AB", 6, AlignCenter, "  AB  "},
		{"already wide enough", "ABCDE", 5, AlignCenter, "ABCDE"},
		{"wider than target", "ABCDEF", 5, AlignStart, "ABCDEF"},
		{"empty input", "", 3, AlignStart, "   "},
	}
	for _, tc := range cases {
		got, err := Pad(tc.in, tc.width, tc.align, ' ', p)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: Pad = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestPadCountsColumnsNotRunes(t *testing.T) {
	p := capability.Full()
	got, err := Pad("混", 4, AlignStart, ' ', p)
	if err != nil {
		t.Fatal(err)
	}
	if got != "混  " {
		t.Fatalf("Pad = %q", got)
	}
	if w := LineWidth(got, p); w != 4 {
		t.Fatalf("padded width = %d", w)
	}
}

func TestPadIgnoresEscapes(t *testing.T) {
	p := capability.Full()
	got, err := Pad("\x1b[31mAB\x1b[0m", 4, AlignStart, ' ', p)
	if err != nil {
		t.Fatal(err)
	}
	if got != "\x1b[31mAB\x1b[0m  " {
		t.Fatalf("Pad = %q", got)
	}
}

func TestPadIdempotent(t *testing.T) {
	p := capability.Full()
	for _, align := range []Align{AlignStart, AlignCenter, AlignEnd} {
		once, err := Pad("hé", 7, align, ' ', p)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := Pad(once, 7, align, ' ', p)
		if err != nil {
			t.Fatal(err)
		}
		if once != twice {
			t.Fatalf("align %d: pad not idempotent: %q vs %q", align, once, twice)
		}
	}
}

func TestPadNegativeWidth(t *testing.T) {
	if _, err := Pad("x", -1, AlignStart, ' ', capability.Full()); err == nil {
		t.Fatal("expected error for negative width")
	}
}

func TestTruncateNoOpAtExactWidth(t *testing.T) {
	p := capability.Full()
	in := "\x1b[32mgreen 混\x1b[0m"
	got, err := Truncate(in, LineWidth(in, p), "…", p)
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Fatalf("exact width should be a no-op: %q", got)
	}
}

func TestTruncateZeroWidth(t *testing.T) {
	got, err := Truncate("hello", 0, "...", capability.Full())
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Fatalf("Truncate to 0 = %q, want empty", got)
	}
}

func TestTruncateSmallerThanEllipsis(t *testing.T) {
	got, err := Truncate("hello world", 2, "...", capability.Full())
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Fatalf("Truncate = %q, want empty", got)
	}
}

func TestTruncatePreservesColorAndResets(t *testing.T) {
	p := capability.Full()
	got, err := Truncate("\x1b[31mHello World\x1b[0m", 7, "...", p)
	if err != nil {
		t.Fatal(err)
	}
	want := "\x1b[31mHell...\x1b[0m"
	if got != want {
		t.Fatalf("Truncate = %q, want %q", got, want)
	}
	if w := LineWidth(got, p); w != 7 {
		t.Fatalf("result width = %d, want 7", w)
	}
}

func TestTruncateClosedStyleNeedsNoReset(t *testing.T) {
	p := capability.Full()
	got, err := Truncate("\x1b[31mHi\x1b[0m and more text", 6, "...", p)
	if err != nil {
		t.Fatal(err)
	}
	want := "\x1b[31mHi\x1b[0m ..."
	if got != want {
		t.Fatalf("Truncate = %q, want %q", got, want)
	}
}

func TestTruncateWideClusterDoesNotSplit(t *testing.T) {
	// The wide cluster that would straddle the cut is dropped whole.
	p := capability.Full()
	got, err := Truncate("a混b", 3, "…", p)
	if err != nil {
		t.Fatal(err)
	}
	if got != "a…" {
		t.Fatalf("Truncate = %q, want %q", got, "a…")
	}
}

func TestTruncateNegativeWidth(t *testing.T) {
	if _, err := Truncate("x", -5, "…", capability.Full()); err == nil {
		t.Fatal("expected error for negative width")
	}
}

func TestTruncatePureEscapeString(t *testing.T) {
	p := capability.Full()
	in := "\x1b[31m\x1b[0m"
	got, err := Truncate(in, 0, "…", p)
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Fatalf("zero-width input should be a no-op: %q", got)
	}
}

package ansi

import "testing"

func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"\x1b[31mred\x1b[0m",
		"\x1b[38;2;255;0;0mtruecolor\x1b[0m tail",
		"\x1b]0;title\x07body",
		"\x1b]0;title\x1b\\body",
		"mixed \x1b[1m\x1b[4mstacked\x1b[0m",
		"unterminated \x1b[38;2;1",
		"bare escape at end \x1b",
		"charset \x1b(Bdone",
	}
	for _, in := range inputs {
		var rebuilt string
		for _, tok := range Tokenize(in) {
			rebuilt += tok.Text
		}
		if rebuilt != in {
			t.Fatalf("round trip mismatch: %q -> %q", in, rebuilt)
		}
	}
}

func TestTokenizeSplitsEscapes(t *testing.T) {
	toks := Tokenize("\x1b[31mhi\x1b[0m")
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %#v", len(toks), toks)
	}
	if !toks[0].Escape || toks[1].Escape || !toks[2].Escape {
		t.Fatalf("escape flags wrong: %#v", toks)
	}
	if toks[1].Text != "hi" {
		t.Fatalf("literal token = %q", toks[1].Text)
	}
}

func TestTokenizeUnterminated(t *testing.T) {
	toks := Tokenize("abc\x1b[38;2;1")
	last := toks[len(toks)-1]
	if !last.Escape {
		t.Fatalf("trailing unterminated sequence should be an escape token: %#v", toks)
	}
}

func TestIsReset(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"\x1b[0m", true},
		{"\x1b[m", true},
		{"\x1b[0;0m", true},
		{"\x1b[31m", false},
		{"\x1b[38;2;0;0;0m", false},
		{"\x1b[2J", false},
	}
	for _, tc := range cases {
		toks := Tokenize(tc.in)
		if len(toks) != 1 {
			t.Fatalf("%q lexed to %d tokens", tc.in, len(toks))
		}
		if got := IsReset(toks[0]); got != tc.want {
			t.Errorf("IsReset(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestOpenStyle(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"no escapes", false},
		{"\x1b[31mopen", true},
		{"\x1b[31mclosed\x1b[0m", false},
		{"\x1b[31ma\x1b[0mb\x1b[32m", true},
		{"\x1b[2Jcursor only", false},
	}
	for _, tc := range cases {
		if got := OpenStyle(tc.in); got != tc.want {
			t.Errorf("OpenStyle(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestStrip(t *testing.T) {
	if got := Strip("\x1b[31mHello\x1b[0m World"); got != "Hello World" {
		t.Fatalf("Strip = %q", got)
	}
}

func TestForeground(t *testing.T) {
	if got := Foreground(255, 0, 128); got != "\x1b[38;2;255;0;128m" {
		t.Fatalf("Foreground = %q", got)
	}
}

package banner

import (
	"strings"
	"testing"

	"github.com/ksokolowski/StyledConsole-sub001/capability"
	"github.com/ksokolowski/StyledConsole-sub001/color"
	"github.com/ksokolowski/StyledConsole-sub001/effect"
)

func TestRenderProducesArt(t *testing.T) {
	lines, err := Render("Hi", "", nil, capability.Full())
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) == 0 {
		t.Fatal("no output lines")
	}
	joined := strings.Join(lines, "\n")
	if !strings.ContainsAny(joined, "_|/\\") {
		t.Fatalf("does not look like ASCII art: %q", joined)
	}
}

func TestRenderEmptyMessage(t *testing.T) {
	if _, err := Render("", "", nil, capability.Full()); err == nil {
		t.Fatal("empty message should fail")
	}
}

func TestRenderGradientKeepsLineCount(t *testing.T) {
	p := capability.Full()
	plain, err := Render("Go", "", nil, p)
	if err != nil {
		t.Fatal(err)
	}
	spec := effect.Linear(effect.Vertical, effect.TargetBoth, color.Color{R: 255}, color.Color{B: 255})
	colored, err := Render("Go", "", &spec, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(plain) != len(colored) {
		t.Fatalf("line count changed: %d vs %d", len(plain), len(colored))
	}
	if !strings.Contains(strings.Join(colored, ""), "\x1b[38;2;") {
		t.Fatal("expected color sequences in gradient banner")
	}
}

func TestRenderNoColorProfileIsPlain(t *testing.T) {
	spec := effect.Linear(effect.Vertical, effect.TargetBoth, color.Color{R: 255}, color.Color{B: 255})
	lines, err := Render("Go", "", &spec, capability.Plain())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(strings.Join(lines, ""), "\x1b") {
		t.Fatal("color disabled but escapes present")
	}
}

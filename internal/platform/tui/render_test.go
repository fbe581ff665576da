package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/retro-pong/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorDarkGray)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestSoundButtonRect(t *testing.T) {
	r := soundButtonRect(80, "[SOUND ON]")
	if r.Y != 0 || r.W != 10 || r.Right() != 78 {
		t.Errorf("rect = %+v, want top row ending two cells from the edge", r)
	}
	if !r.Contains(70, 0) || r.Contains(70, 1) {
		t.Error("rect should cover only the top row")
	}
}

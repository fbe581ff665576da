package tui

import (
	"testing"

	"github.com/vovakirdan/retro-pong/internal/core"
)

func TestKeyHoldExpires(t *testing.T) {
	h := newKeyHold(3)
	h.Press(core.ActionUp)

	for tick := range 3 {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.Has(core.ActionUp) {
			t.Fatalf("tick %d: up not held", tick)
		}
	}

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionUp) {
		t.Error("up still held after the window")
	}
}

func TestKeyHoldRepeatExtends(t *testing.T) {
	h := newKeyHold(2)
	h.Press(core.ActionDown)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	h.Press(core.ActionDown)

	for tick := range 2 {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.Has(core.ActionDown) {
			t.Fatalf("tick %d: down not held after repeat", tick)
		}
	}
}

func TestKeyHoldOppositeCancels(t *testing.T) {
	h := newKeyHold(5)
	h.Press(core.ActionUp)
	h.Press(core.ActionDown)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionUp) {
		t.Error("up should be cancelled by down")
	}
	if !frame.Has(core.ActionDown) {
		t.Error("down should be held")
	}

	h.Release()
	frame = core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionDown) {
		t.Error("release should drop every hold")
	}
}

func TestHoldWindow(t *testing.T) {
	if got := holdWindow(60); got != 10 {
		t.Errorf("holdWindow(60) = %d, want 10", got)
	}
	if got := holdWindow(0); got != 10 {
		t.Errorf("holdWindow(0) = %d, want 10", got)
	}
	if got := holdWindow(3); got != 1 {
		t.Errorf("holdWindow(3) = %d, want 1", got)
	}
}

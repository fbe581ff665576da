package tui

import "github.com/vovakirdan/retro-pong/internal/core"

// keyHold turns terminal key presses into held keys. Terminals report
// presses and auto-repeats but never releases, so each press keeps its
// action active for a short window that the next repeat extends.
type keyHold struct {
	window    int
	remaining map[core.Action]int
}

// newKeyHold creates a hold tracker. window is in ticks.
func newKeyHold(window int) *keyHold {
	if window < 1 {
		window = 1
	}
	return &keyHold{window: window, remaining: make(map[core.Action]int)}
}

// holdWindow returns the hold window for a tick rate: long enough to bridge
// the gap between auto-repeats once they start.
func holdWindow(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return max(1, tickRate/6)
}

// Press starts or extends the hold of a. Opposite directions cancel each other.
func (h *keyHold) Press(a core.Action) {
	switch a {
	case core.ActionUp:
		delete(h.remaining, core.ActionDown)
	case core.ActionDown:
		delete(h.remaining, core.ActionUp)
	}
	h.remaining[a] = h.window
}

// Apply sets every held action on frame and counts one tick down.
func (h *keyHold) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Release drops every hold.
func (h *keyHold) Release() {
	clear(h.remaining)
}

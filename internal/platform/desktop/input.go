package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/retro-pong/internal/core"
)

// rect is an axis-aligned area in world units.
type rect struct {
	X, Y, W, H float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// pointerSample is the raw pointer level read in one tick.
type pointerSample struct {
	X, Y float64
	Down bool
}

// pointerTracker derives press and release edges from sampled pointer levels.
// A press that lands on the sound button belongs to the button: the game sees
// no pointer until that press is released.
type pointerTracker struct {
	down      bool
	swallowed bool
}

// update returns the game pointer for this tick and whether the sound button
// was pressed.
func (t *pointerTracker) update(s pointerSample, button rect) (core.Pointer, bool) {
	pressed := s.Down && !t.down
	released := !s.Down && t.down
	t.down = s.Down

	if pressed && button.contains(s.X, s.Y) {
		t.swallowed = true
		return core.Pointer{}, true
	}
	if t.swallowed {
		if released {
			t.swallowed = false
		}
		return core.Pointer{}, false
	}

	return core.Pointer{
		X:        s.X,
		Y:        s.Y,
		Down:     s.Down,
		Pressed:  pressed,
		Released: released,
	}, false
}

// samplePointer reads the mouse, or the first touch when the mouse is up.
// Coordinates are in layout space, which is world space.
func samplePointer() pointerSample {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return pointerSample{X: float64(x), Y: float64(y), Down: true}
	}
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return pointerSample{X: float64(x), Y: float64(y), Down: true}
	}
	x, y := ebiten.CursorPosition()
	return pointerSample{X: float64(x), Y: float64(y)}
}

// readKeys sets the keyboard actions of this tick on frame. Movement keys
// are levels, the rest are edges.
func readKeys(frame *core.InputFrame) {
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		frame.Set(core.ActionUp)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		frame.Set(core.ActionDown)
	}

	edges := []struct {
		key    ebiten.Key
		action core.Action
	}{
		{ebiten.KeyP, core.ActionPause},
		{ebiten.KeyR, core.ActionRestart},
		{ebiten.KeyM, core.ActionToggleSound},
		{ebiten.KeyEscape, core.ActionQuit},
		{ebiten.KeyQ, core.ActionQuit},
	}
	for _, e := range edges {
		if inpututil.IsKeyJustPressed(e.key) {
			frame.Set(e.action)
		}
	}
}

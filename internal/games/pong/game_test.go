package pong

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/retro-pong/internal/config"
	"github.com/vovakirdan/retro-pong/internal/core"
)

func newTestGame(t *testing.T, cfg config.PongConfig) *Game {
	t.Helper()
	g, err := NewWithConfig(cfg, false)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestNewWithConfigRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Gameplay.WinScore = 0

	_, err := NewWithConfig(cfg, false)
	if !errors.Is(err, ErrSceneInit) {
		t.Errorf("expected ErrSceneInit, got %v", err)
	}
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("expected the validation error to be wrapped, got %v", err)
	}

	if err := SetConfig(cfg); !errors.Is(err, ErrSceneInit) {
		t.Errorf("SetConfig: expected ErrSceneInit, got %v", err)
	}
}

func TestResetStartsServedBall(t *testing.T) {
	g := newTestGame(t, config.DefaultPongConfig())
	snap := g.Snapshot()

	if snap.BallX != 400 || snap.BallY != 300 {
		t.Errorf("ball at (%v, %v), expected center", snap.BallX, snap.BallY)
	}
	if snap.BallVX != 200 || snap.BallVY < -100 || snap.BallVY > 100 {
		t.Errorf("initial ball velocity (%v, %v)", snap.BallVX, snap.BallVY)
	}
	if !snap.BallVisible || snap.Serving {
		t.Error("initial ball should be in play without a pending serve")
	}
	if snap.PlayerY != 300 || snap.AIY != 300 {
		t.Errorf("paddles at %v / %v, expected 300", snap.PlayerY, snap.AIY)
	}
	if g.ID() != IDClassic || g.Title() != "Pong" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should produce identical snapshots
	g1 := newTestGame(t, config.DefaultPongConfig())
	g2 := newTestGame(t, config.DefaultPongConfig())

	input := core.NewInputFrame()
	for i := 0; i < 1200; i++ {
		input.Clear()
		switch {
		case i%90 < 30:
			input.Set(core.ActionUp)
		case i%90 < 60:
			input.Set(core.ActionDown)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestKeyboardMovesPlayerPaddle(t *testing.T) {
	g := newTestGame(t, config.DefaultPongConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	g.Step(in)

	if g.mc.Player.Vel.Y != -400 {
		t.Errorf("up: paddle vy=%v, expected -400", g.mc.Player.Vel.Y)
	}
	if !approx(g.mc.Player.Pos.Y, 300-400.0/60) {
		t.Errorf("up: paddle y=%v", g.mc.Player.Pos.Y)
	}

	in.Clear()
	in.Set(core.ActionDown)
	g.Step(in)
	if g.mc.Player.Vel.Y != 400 {
		t.Errorf("down: paddle vy=%v, expected 400", g.mc.Player.Vel.Y)
	}

	in.Clear()
	g.Step(in)
	if g.mc.Player.Vel.Y != 0 {
		t.Errorf("no input: paddle vy=%v, expected 0", g.mc.Player.Vel.Y)
	}
}

func TestPlayerPaddleStaysInBounds(t *testing.T) {
	g := newTestGame(t, config.DefaultPongConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	for range 120 {
		g.Step(in)
	}
	if top := g.mc.Player.Top(); top < 10 {
		t.Errorf("paddle top %v escaped the world bounds", top)
	}
}

func TestPointerDragSteersPaddle(t *testing.T) {
	g := newTestGame(t, config.DefaultPongConfig())

	in := core.NewInputFrame()
	in.Pointer = core.Pointer{X: 50, Y: 100, Down: true, Pressed: true}
	in.Set(core.ActionDown) // the drag wins over the keyboard
	g.Step(in)

	if !g.Dragging() {
		t.Fatal("press inside the input zone should start a drag")
	}
	wantVY := (100 - 300) / 0.075
	if !approx(g.mc.Player.Vel.Y, wantVY) {
		t.Errorf("drag vy=%v, expected %v", g.mc.Player.Vel.Y, wantVY)
	}

	// Held without edges the drag keeps steering.
	in.Clear()
	g.Step(in)
	if !g.Dragging() || g.mc.Player.Vel.Y >= 0 {
		t.Errorf("held drag: dragging=%v vy=%v", g.Dragging(), g.mc.Player.Vel.Y)
	}

	in.Pointer.Down = false
	in.Pointer.Released = true
	g.Step(in)
	if g.Dragging() {
		t.Error("release should end the drag")
	}
	if g.mc.Player.Vel.Y != 0 {
		t.Errorf("paddle should halt on release, vy=%v", g.mc.Player.Vel.Y)
	}
}

func TestPointerTargetClamped(t *testing.T) {
	g := newTestGame(t, config.DefaultPongConfig())

	in := core.NewInputFrame()
	in.Pointer = core.Pointer{X: 10, Y: -500, Down: true, Pressed: true}
	g.Step(in)

	wantVY := (50 - 300) / 0.075
	if !approx(g.mc.Player.Vel.Y, wantVY) {
		t.Errorf("clamped drag vy=%v, expected %v", g.mc.Player.Vel.Y, wantVY)
	}
}

func TestPointerOutsideZoneIgnored(t *testing.T) {
	g := newTestGame(t, config.DefaultPongConfig())

	in := core.NewInputFrame()
	in.Pointer = core.Pointer{X: 400, Y: 100, Down: true, Pressed: true}
	in.Set(core.ActionDown)
	g.Step(in)

	if g.Dragging() {
		t.Error("press outside the input zone should not start a drag")
	}
	if g.mc.Player.Vel.Y != 400 {
		t.Errorf("keyboard should steer, vy=%v", g.mc.Player.Vel.Y)
	}
}

func TestBallDeflectsOffPlayerPaddle(t *testing.T) {
	g := newTestGame(t, config.DefaultPongConfig())
	g.mc.Ball.SetPosition(116, 280)
	g.mc.Ball.SetVelocity(-200, 0)

	res := g.Step(core.NewInputFrame())

	if g.mc.Ball.Vel.X != 200 || !approx(g.mc.Ball.Vel.Y, -200) {
		t.Errorf("ball velocity after hit %+v, expected (200, -200)", g.mc.Ball.Vel)
	}
	if g.mc.Ball.Left() < g.mc.Player.Right()-1e-6 {
		t.Error("ball should be separated from the paddle")
	}
	if countEvents(res.Events, core.EventPaddleHit) != 1 {
		t.Errorf("expected a paddle hit event, got %+v", res.Events)
	}
}

func TestBallDeflectsOffAIPaddle(t *testing.T) {
	g := newTestGame(t, config.DefaultPongConfig())
	g.mc.Ball.SetPosition(684, 320)
	g.mc.Ball.SetVelocity(250, 0)
	g.mc.AI.SetPosition(700, 300)

	g.Step(core.NewInputFrame())

	if g.mc.Ball.Vel.X != -250 || g.mc.Ball.Vel.Y < 50 {
		t.Errorf("ball velocity after AI hit %+v", g.mc.Ball.Vel)
	}
}

func TestBallBouncesOffTopWall(t *testing.T) {
	g := newTestGame(t, config.DefaultPongConfig())
	g.mc.Ball.SetPosition(400, 20)
	g.mc.Ball.SetVelocity(100, -300)

	res := g.Step(core.NewInputFrame())

	if g.mc.Ball.Vel.Y != 300 {
		t.Errorf("ball vy after top wall = %v, expected 300", g.mc.Ball.Vel.Y)
	}
	if countEvents(res.Events, core.EventWallBounce) != 1 {
		t.Errorf("expected a wall bounce event, got %+v", res.Events)
	}
}

// scoreLeft sends the ball into the left wall.
func scoreLeft(g *Game) core.StepResult {
	g.mc.Ball.SetPosition(20, 500)
	g.mc.Ball.SetVelocity(-600, 0)
	return g.Step(core.NewInputFrame())
}

func TestPointThenServeAfterDelay(t *testing.T) {
	g := newTestGame(t, config.DefaultPongConfig())

	res := scoreLeft(g)
	if res.State.Opponent != 1 || res.State.Score != 0 {
		t.Fatalf("score %d-%d, expected 0-1", res.State.Score, res.State.Opponent)
	}
	if countEvents(res.Events, core.EventPointScored) != 1 {
		t.Errorf("expected one point event, got %+v", res.Events)
	}
	if snap := g.Snapshot(); snap.BallVisible || !snap.Serving {
		t.Fatal("ball should be hidden with a serve pending")
	}

	ticks := 0
	for !g.Snapshot().BallVisible && ticks < 120 {
		g.Step(core.NewInputFrame())
		ticks++
	}
	// 1000 ms at 60 ticks per second, allowing for integer tick durations.
	if ticks < 60 || ticks > 61 {
		t.Errorf("serve fired after %d ticks", ticks)
	}
	if g.mc.Ball.Vel.X != -200 {
		t.Errorf("serve after AI point should go toward the player, vx=%v", g.mc.Ball.Vel.X)
	}
}

func TestGameOverFreezesAndRestarts(t *testing.T) {
	g := newTestGame(t, config.DefaultPongConfig())
	g.mc.AIScore = 10

	res := scoreLeft(g)
	if !res.State.GameOver || res.State.Winner != "ai" {
		t.Fatalf("state after 11th point: %+v", res.State)
	}
	if got := g.Snapshot().Banner(); got != "AI Wins!" {
		t.Errorf("banner = %q", got)
	}

	frozen := g.Snapshot()
	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	in.Set(core.ActionPause)
	for range 120 {
		g.Step(in)
	}
	if g.Snapshot() != frozen {
		t.Error("game over should freeze the field")
	}

	in.Clear()
	in.Pointer = core.Pointer{X: 400, Y: 300, Down: true, Pressed: true}
	res = g.Step(in)
	if res.State.GameOver || res.State.Score != 0 || res.State.Opponent != 0 {
		t.Fatalf("state after restart: %+v", res.State)
	}
	if countEvents(res.Events, core.EventRestart) != 1 {
		t.Errorf("expected a restart event, got %+v", res.Events)
	}
	if g.mc.Timers.Len() != 1 {
		t.Errorf("pending serves after restart = %d, expected 1", g.mc.Timers.Len())
	}

	in = core.NewInputFrame()
	for range 61 {
		g.Step(in)
	}
	if vx := g.mc.Ball.Vel.X; vx != 200 && vx != -200 {
		t.Errorf("restart serve vx=%v, expected +/-200", vx)
	}
}

func TestRestartKey(t *testing.T) {
	g := newTestGame(t, config.DefaultPongConfig())
	g.mc.PlayerScore = 10
	g.mc.Ball.SetPosition(780, 500)
	g.mc.Ball.SetVelocity(600, 0)
	g.mc.AI.SetPosition(700, 100)
	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || res.State.Winner != "player" {
		t.Fatalf("expected player win, got %+v", res.State)
	}
	if got := g.Snapshot().Banner(); got != "You Win!" {
		t.Errorf("banner = %q", got)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	if res := g.Step(in); res.State.GameOver {
		t.Error("R should restart a finished match")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, config.DefaultPongConfig())
	scoreLeft(g)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	res := g.Step(in)
	if !res.State.Paused {
		t.Fatal("expected paused")
	}

	before := g.Snapshot()
	for range 200 {
		g.Step(core.NewInputFrame())
	}
	if after := g.Snapshot(); after != before {
		t.Error("paused game changed state")
	}
	if !g.Snapshot().Serving {
		t.Error("serve timer should not run while paused")
	}

	res = g.Step(in)
	if res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestAITracksBall(t *testing.T) {
	g := newTestGame(t, config.DefaultPongConfig())
	g.mc.Ball.SetPosition(400, 500)
	g.mc.Ball.SetVelocity(0, 0)

	g.Step(core.NewInputFrame())

	if g.mc.AI.Vel.Y != 150 {
		t.Errorf("AI vy=%v, expected 150 toward the ball", g.mc.AI.Vel.Y)
	}
}

func TestDifficultyScalesAISpeed(t *testing.T) {
	cfg := config.DefaultPongConfig()
	config.ApplyPongPreset(&cfg, config.DifficultyHard)
	g := newTestGame(t, cfg)

	if got := g.AISpeed(); !approx(got, 150*1.7) {
		t.Errorf("hard AI speed at 0 points = %v, expected %v", got, 150*1.7)
	}

	g.mc.PlayerScore = 10
	g.mc.AIScore = 10
	if got := g.AISpeed(); !approx(got, 300) {
		t.Errorf("hard AI speed at max level = %v, expected 300", got)
	}

	plain := newTestGame(t, config.DefaultPongConfig())
	plain.mc.AIScore = 9
	if got := plain.AISpeed(); got != 150 {
		t.Errorf("default AI speed = %v, expected 150", got)
	}
}

func TestRenderDrawsField(t *testing.T) {
	g := newTestGame(t, config.DefaultPongConfig())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{string(PaddleChar), string(BallChar), "v0.1.2", "0"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if strings.ContainsRune(out, GridChar) {
		t.Error("classic variant should not draw the grid")
	}
}

func TestRenderRetroGridAndBanner(t *testing.T) {
	g, err := NewWithConfig(config.DefaultPongConfig(), true)
	if err != nil {
		t.Fatal(err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	if g.ID() != IDRetro {
		t.Errorf("ID = %q, expected %q", g.ID(), IDRetro)
	}

	g.mc.PlayerScore = 10
	g.mc.Ball.SetPosition(780, 500)
	g.mc.Ball.SetVelocity(600, 0)
	g.mc.AI.SetPosition(700, 100)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.ContainsRune(out, GridChar) {
		t.Error("retro variant should draw the grid")
	}
	if !strings.Contains(out, "You Win!") {
		t.Error("game over banner missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, config.DefaultPongConfig())
	screen := core.NewScreen(20, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected a too-small message")
	}
}

func TestGridLinesStayInField(t *testing.T) {
	grid := DefaultGrid(800, 600)
	grid.Phase = 0.4
	lines := grid.Lines()

	if len(lines) != 1+grid.Columns+1+grid.Rows {
		t.Errorf("got %d lines", len(lines))
	}
	horizon := 600 * grid.Horizon
	if lines[0].Y1 != horizon || lines[0].Y2 != horizon {
		t.Errorf("first line should be the horizon, got %+v", lines[0])
	}

	const eps = 1e-9
	for i, l := range lines {
		for _, x := range []float64{l.X1, l.X2} {
			if x < -eps || x > 800+eps {
				t.Errorf("line %d x=%v outside field", i, x)
			}
		}
		for _, y := range []float64{l.Y1, l.Y2} {
			if y < horizon-eps || y > 600+eps {
				t.Errorf("line %d y=%v outside floor", i, y)
			}
		}
	}

	if DefaultGrid(0, 0).Lines() != nil {
		t.Error("empty field should have no grid")
	}
}

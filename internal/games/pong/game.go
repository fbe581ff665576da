// Package pong implements Pong against a CPU paddle on top of a small arcade
// physics world. The player owns the left paddle and steers it with the
// keyboard or by dragging in the zone left of the paddle; the AI tracks the
// ball on the right. The first side to reach the winning score ends the match,
// and a click or R restarts it.
package pong

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/retro-pong/internal/config"
	"github.com/vovakirdan/retro-pong/internal/core"
	"github.com/vovakirdan/retro-pong/internal/physics"
	"github.com/vovakirdan/retro-pong/internal/registry"
	"github.com/vovakirdan/retro-pong/internal/sched"
)

// Variant IDs.
const (
	IDClassic = "pong"
	IDRetro   = "pong_retro"
)

// ErrSceneInit is returned when a match cannot be set up, for example from an
// invalid configuration or a missing asset.
var ErrSceneInit = errors.New("scene init failed")

// sharedConfig is used by games created through the registry.
var sharedConfig = config.DefaultPongConfig()

// SetConfig validates cfg and makes it the configuration of games created
// through the registry.
func SetConfig(cfg config.PongConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("pong: %w: %w", ErrSceneInit, err)
	}
	sharedConfig = cfg
	return nil
}

// Game implements the Pong game logic.
type Game struct {
	id    string
	cfg   config.PongConfig
	retro bool

	runtime    core.RuntimeConfig
	mc         *MatchContext
	world      *physics.World
	timers     *sched.Scheduler
	difficulty *config.DifficultyManager

	paused    bool
	dragging  bool
	tickCount int
}

// New creates a classic Pong game with the shared configuration.
func New() *Game {
	return &Game{id: IDClassic, cfg: sharedConfig, retro: sharedConfig.Style.RetroGrid}
}

// NewRetro creates a Pong game drawn over the perspective grid.
func NewRetro() *Game {
	return &Game{id: IDRetro, cfg: sharedConfig, retro: true}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.PongConfig, retro bool) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pong: %w: %w", ErrSceneInit, err)
	}
	id := IDClassic
	if retro {
		id = IDRetro
	}
	return &Game{id: id, cfg: cfg, retro: retro || cfg.Style.RetroGrid}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.id == IDRetro {
		return "Pong (Retro Grid)"
	}
	return "Pong"
}

// Reset sets up a new match. The ball starts at the center already moving
// toward the AI.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.timers = sched.New()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.paused = false
	g.dragging = false
	g.tickCount = 0

	p := ParamsFromConfig(g.cfg)
	g.mc = NewMatchContext(p, core.NewRand(runtime.Seed), g.timers)

	g.world = physics.NewWorld(p.BoundsInset, p.BoundsInset, p.FieldW-2*p.BoundsInset, p.FieldH-2*p.BoundsInset)
	g.world.Add(g.mc.Player)
	g.world.Add(g.mc.AI)
	g.world.Add(g.mc.Ball)

	g.world.AddCollider(g.mc.Ball, g.mc.Player, g.onPaddleHit)
	g.world.AddCollider(g.mc.Ball, g.mc.AI, g.onPaddleHit)
	g.world.OnWorldBounds(g.onWorldBounds)

	serve(g.mc, false)
}

// onPaddleHit is the ball/paddle collider callback.
func (g *Game) onPaddleHit(ball, paddle *physics.Body) {
	side := SidePlayer
	if paddle == g.mc.AI {
		side = SideAI
	}
	vx, vy := Deflect(ball.Pos.Y, paddle.Pos.Y, ball.Vel.X, side, g.mc.Params, g.mc.Rand)
	ball.SetVelocity(vx, vy)
	g.mc.emit(core.EventPaddleHit, side)
}

// onWorldBounds is the world-bounds callback.
func (g *Game) onWorldBounds(b *physics.Body, hit physics.Side) {
	if b != g.mc.Ball {
		return
	}
	OnBoundary(g.mc, hit.Has(physics.SideLeft), hit.Has(physics.SideRight))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.mc.GameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.mc.GameOver() {
		if in.Has(core.ActionRestart) || in.Pointer.Pressed {
			g.dragging = false
			Restart(g.mc)
		}
		return core.StepResult{State: g.State(), Events: g.mc.drainEvents()}
	}

	g.tickCount++
	dt := g.runtime.TickDuration()

	// Serve callbacks run first so a due ball moves this frame.
	g.timers.Advance(dt)

	g.steerPlayer(in)

	p := g.mc.Params
	g.mc.AI.Vel.Y = Track(g.mc.Ball.Pos.Y, g.mc.AI.Pos.Y, p.PaddleH, p.AIDeadZone, g.AISpeed())

	g.world.Step(dt.Seconds())

	return core.StepResult{State: g.State(), Events: g.mc.drainEvents()}
}

// steerPlayer sets the player paddle velocity. A drag that started inside the
// input zone wins over the keyboard for as long as the pointer stays down.
func (g *Game) steerPlayer(in core.InputFrame) {
	p := g.mc.Params
	ptr := in.Pointer
	paddle := g.mc.Player

	if ptr.Pressed && ptr.X <= p.PlayerX()+p.PaddleW/2 {
		g.dragging = true
	}
	if ptr.Released || !ptr.Down {
		g.dragging = false
	}

	paddle.Vel.Y = 0

	if g.dragging {
		targetY := core.ClampF(ptr.Y, p.PaddleH/2, p.FieldH-p.PaddleH/2)
		physics.MoveTo(paddle, paddle.Pos.X, targetY, p.PointerSeek.Seconds())
		return
	}

	switch {
	case in.Has(core.ActionUp):
		paddle.Vel.Y = -p.PlayerSpeed
	case in.Has(core.ActionDown):
		paddle.Vel.Y = p.PlayerSpeed
	}
}

// AISpeed returns the AI paddle speed after difficulty scaling.
func (g *Game) AISpeed() float64 {
	points := g.mc.PlayerScore + g.mc.AIScore
	return g.difficulty.Speed(g.mc.Params.AISpeed, points, g.tickCount)
}

// Params returns the match parameters.
func (g *Game) Params() Params {
	return ParamsFromConfig(g.cfg)
}

// FieldSize returns the field size in world units.
func (g *Game) FieldSize() (w, h float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.PongConfig {
	return g.cfg
}

// Retro reports whether the perspective grid is drawn.
func (g *Game) Retro() bool {
	return g.retro
}

// Dragging reports whether the pointer currently steers the player paddle.
func (g *Game) Dragging() bool {
	return g.dragging
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.mc.PlayerScore,
		Opponent: g.mc.AIScore,
		GameOver: g.mc.GameOver(),
		Paused:   g.paused,
		Winner:   g.mc.Winner.String(),
	}
}

// Register the game with the registry
func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDRetro, func() registry.Game {
		return NewRetro()
	})
}

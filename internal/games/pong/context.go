package pong

import (
	"time"

	"github.com/vovakirdan/retro-pong/internal/config"
	"github.com/vovakirdan/retro-pong/internal/core"
	"github.com/vovakirdan/retro-pong/internal/physics"
	"github.com/vovakirdan/retro-pong/internal/sched"
)

// Side identifies the owner of a paddle.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideAI
)

// String returns the side name used in events and logs.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	default:
		return ""
	}
}

// MatchState is the state of the match state machine.
type MatchState int

const (
	StatePlaying MatchState = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s MatchState) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "playing"
}

// Params are the tuning values of a match in world units.
type Params struct {
	FieldW, FieldH float64
	BoundsInset    float64

	PaddleW, PaddleH float64
	PaddleOffset     float64
	PlayerSpeed      float64
	PointerSeek      time.Duration

	BallSize    float64
	ServeSpeed  float64
	ServeSpread int
	ServeDelay  time.Duration

	AISpeed    float64
	AIDeadZone float64 // fraction of PaddleH

	DeflectFactor   float64
	MinDeflect      float64
	MaxDeflectRatio float64
	CenterSpread    int

	WinScore int
}

// ParamsFromConfig converts a loaded configuration into match parameters.
func ParamsFromConfig(cfg config.PongConfig) Params {
	return Params{
		FieldW:          cfg.Field.Width,
		FieldH:          cfg.Field.Height,
		BoundsInset:     cfg.Field.BoundsInset,
		PaddleW:         cfg.Paddles.Width,
		PaddleH:         cfg.Paddles.Height,
		PaddleOffset:    cfg.Paddles.Offset,
		PlayerSpeed:     cfg.Paddles.PlayerSpeed,
		PointerSeek:     time.Duration(cfg.Paddles.PointerSeekMS) * time.Millisecond,
		BallSize:        cfg.Ball.Size,
		ServeSpeed:      cfg.Ball.ServeSpeed,
		ServeSpread:     cfg.Ball.ServeSpread,
		ServeDelay:      time.Duration(cfg.Gameplay.ServeDelayMS) * time.Millisecond,
		AISpeed:         cfg.AI.Speed,
		AIDeadZone:      cfg.AI.DeadZone,
		DeflectFactor:   cfg.Deflection.Factor,
		MinDeflect:      cfg.Deflection.MinSpeed,
		MaxDeflectRatio: cfg.Deflection.MaxRatio,
		CenterSpread:    cfg.Deflection.CenterSpread,
		WinScore:        cfg.Gameplay.WinScore,
	}
}

// PlayerX returns the x of the player paddle center.
func (p Params) PlayerX() float64 { return p.PaddleOffset }

// AIX returns the x of the AI paddle center.
func (p Params) AIX() float64 { return p.FieldW - p.PaddleOffset }

// CenterX returns the x of the field center.
func (p Params) CenterX() float64 { return p.FieldW / 2 }

// CenterY returns the y of the field center.
func (p Params) CenterY() float64 { return p.FieldH / 2 }

// MatchContext owns all mutable state of one match. The rule functions take
// it by reference and keep nothing of their own.
type MatchContext struct {
	Params Params

	Ball   *physics.Body
	Player *physics.Body
	AI     *physics.Body

	PlayerScore int
	AIScore     int
	State       MatchState
	Winner      Side

	// Serve is the pending serve, nil when none is scheduled.
	Serve *sched.Timer

	Rand   core.Rand
	Timers *sched.Scheduler

	events []core.Event
}

// NewMatchContext creates the bodies of a match at their starting positions.
func NewMatchContext(p Params, rng core.Rand, timers *sched.Scheduler) *MatchContext {
	mc := &MatchContext{
		Params: p,
		Rand:   rng,
		Timers: timers,
	}

	mc.Player = physics.NewRect("player", p.PlayerX(), p.CenterY(), p.PaddleW, p.PaddleH)
	mc.Player.Immovable = true
	mc.Player.CollideWorldBounds = true

	mc.AI = physics.NewRect("ai", p.AIX(), p.CenterY(), p.PaddleW, p.PaddleH)
	mc.AI.Immovable = true
	mc.AI.CollideWorldBounds = true

	mc.Ball = physics.NewCircle("ball", p.CenterX(), p.CenterY(), p.BallSize/2)
	mc.Ball.Bounce = core.Vec2{X: 1, Y: 1}
	mc.Ball.CollideWorldBounds = true
	mc.Ball.OnWorldBounds = true

	return mc
}

// GameOver reports whether the match has ended.
func (mc *MatchContext) GameOver() bool {
	return mc.State == StateGameOver
}

// ServePending reports whether a serve is scheduled and has not fired yet.
func (mc *MatchContext) ServePending() bool {
	return mc.Serve.Pending()
}

// BallVisible reports whether the ball is in play.
func (mc *MatchContext) BallVisible() bool {
	return !mc.Ball.Disabled
}

func (mc *MatchContext) emit(kind core.EventKind, side Side) {
	mc.events = append(mc.events, core.Event{Kind: kind, Side: side.String()})
}

// drainEvents returns and clears the events emitted since the last call.
func (mc *MatchContext) drainEvents() []core.Event {
	ev := mc.events
	mc.events = nil
	return ev
}

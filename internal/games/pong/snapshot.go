package pong

// Snapshot contains everything a front end needs to draw one frame.
// Positions are body centers in world units.
type Snapshot struct {
	Tick uint64

	BallX, BallY   float64
	BallVX, BallVY float64
	BallVisible    bool

	PlayerY float64
	AIY     float64

	PlayerScore int
	AIScore     int
	State       MatchState
	Winner      Side
	Paused      bool
	Serving     bool
	Dragging    bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	mc := g.mc
	return Snapshot{
		Tick:        uint64(max(0, g.tickCount)), //nolint:gosec // tickCount is always non-negative in game logic
		BallX:       mc.Ball.Pos.X,
		BallY:       mc.Ball.Pos.Y,
		BallVX:      mc.Ball.Vel.X,
		BallVY:      mc.Ball.Vel.Y,
		BallVisible: mc.BallVisible(),
		PlayerY:     mc.Player.Pos.Y,
		AIY:         mc.AI.Pos.Y,
		PlayerScore: mc.PlayerScore,
		AIScore:     mc.AIScore,
		State:       mc.State,
		Winner:      mc.Winner,
		Paused:      g.paused,
		Serving:     mc.ServePending(),
		Dragging:    g.dragging,
	}
}

// Banner returns the game-over message, empty while the match is running.
func (s Snapshot) Banner() string {
	if s.State != StateGameOver {
		return ""
	}
	if s.Winner == SidePlayer {
		return "You Win!"
	}
	return "AI Wins!"
}

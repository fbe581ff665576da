package pong

import "github.com/vovakirdan/retro-pong/internal/core"

// OnBoundary applies a ball contact with the world bounds. Left and right
// contacts score a point; top and bottom contacts are plain bounces. Contacts
// after the match ended are ignored.
func OnBoundary(mc *MatchContext, left, right bool) {
	if mc.GameOver() {
		return
	}

	var scorer Side
	switch {
	case left:
		mc.AIScore++
		scorer = SideAI
	case right:
		mc.PlayerScore++
		scorer = SidePlayer
	default:
		mc.emit(core.EventWallBounce, SideNone)
		return
	}
	mc.emit(core.EventPointScored, scorer)

	if mc.PlayerScore >= mc.Params.WinScore || mc.AIScore >= mc.Params.WinScore {
		endMatch(mc, scorer)
		return
	}
	// The side that lost the point receives the serve.
	ScheduleServe(mc, scorer == SideAI)
}

// endMatch freezes the field and records the winner.
func endMatch(mc *MatchContext, winner Side) {
	mc.State = StateGameOver
	mc.Winner = winner

	mc.Serve.Cancel()
	mc.Serve = nil

	mc.Ball.Stop()
	mc.Ball.Disabled = true
	mc.Player.Stop()
	mc.AI.Stop()
	mc.emit(core.EventGameOver, winner)
}

// Restart starts a new match from a finished one: scores are reset, every
// body halts, and one serve toward a random side is scheduled.
// It does nothing while a match is in progress.
func Restart(mc *MatchContext) {
	if !mc.GameOver() {
		return
	}

	mc.Serve.Cancel()
	mc.Serve = nil

	mc.PlayerScore = 0
	mc.AIScore = 0
	mc.State = StatePlaying
	mc.Winner = SideNone

	mc.Ball.Stop()
	mc.Player.Stop()
	mc.AI.Stop()
	mc.emit(core.EventRestart, SideNone)

	ScheduleServe(mc, mc.Rand.IntBetween(0, 1) == 0)
}

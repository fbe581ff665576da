package pong

import "github.com/vovakirdan/retro-pong/internal/core"

// ScheduleServe stops and hides the ball, then serves it from the field
// center after the serve delay. toPlayer sends it leftward.
//
// Any serve still pending is cancelled first, so at most one is ever
// scheduled. Nothing happens once the match is over, and a serve that comes
// due after the match ended is dropped.
func ScheduleServe(mc *MatchContext, toPlayer bool) {
	if mc.GameOver() {
		return
	}

	mc.Ball.Stop()
	mc.Ball.Disabled = true

	mc.Serve.Cancel()
	mc.Serve = mc.Timers.After(mc.Params.ServeDelay, func() {
		mc.Serve = nil
		if mc.GameOver() {
			return
		}
		serve(mc, toPlayer)
	})
}

// serve puts the ball back in play.
func serve(mc *MatchContext, toPlayer bool) {
	p := mc.Params
	vx := p.ServeSpeed
	side := SideAI
	if toPlayer {
		vx = -vx
		side = SidePlayer
	}
	vy := float64(mc.Rand.IntBetween(-p.ServeSpread, p.ServeSpread))

	mc.Ball.SetPosition(p.CenterX(), p.CenterY())
	mc.Ball.Disabled = false
	mc.Ball.SetVelocity(vx, vy)
	mc.emit(core.EventServe, side)
}

package pong

import (
	"math"

	"github.com/vovakirdan/retro-pong/internal/core"
)

// Deflect returns the ball velocity after it touched the paddle owned by side.
//
// The vertical speed grows with the distance between the contact point and
// the paddle center and always points away from the center. Its magnitude is
// at least p.MinDeflect and at most p.MaxDeflectRatio times the horizontal
// speed; that upper bound never drops below p.MinDeflect, so a stalled ball
// still leaves with |vy| == p.MinDeflect. A dead-center hit draws vy from
// [-p.CenterSpread, p.CenterSpread]. Horizontal speed is kept as is and only
// its sign is set: rightward off the player paddle, leftward off the AI one.
func Deflect(ballY, paddleY, absSpeedX float64, side Side, p Params, rng core.Rand) (vx, vy float64) {
	absSpeedX = math.Abs(absSpeedX)
	maxDeflect := math.Max(absSpeedX*p.MaxDeflectRatio, p.MinDeflect)
	diff := paddleY - ballY

	switch {
	case diff > 0:
		vy = core.ClampF(-p.DeflectFactor*diff, -maxDeflect, -p.MinDeflect)
	case diff < 0:
		vy = core.ClampF(-p.DeflectFactor*diff, p.MinDeflect, maxDeflect)
	default:
		vy = float64(rng.IntBetween(-p.CenterSpread, p.CenterSpread))
	}

	vx = absSpeedX
	if side == SideAI {
		vx = -absSpeedX
	}
	return vx, vy
}

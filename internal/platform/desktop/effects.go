package desktop

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/retro-pong/internal/core"
)

// Effect timings in seconds.
const (
	bannerFadeIn = 0.6
	scorePopTime = 0.4
	scorePopFrom = 1.6
)

// effects holds the tweens driven by game events: the game-over banner fades
// in and a score text pops when its side scores. Call update once per tick.
type effects struct {
	banner      *gween.Tween
	bannerAlpha float32

	pop      [2]*gween.Tween // player, ai
	popScale [2]float32
}

func newEffects() *effects {
	return &effects{popScale: [2]float32{1, 1}}
}

// observe starts tweens for the events of one tick.
func (e *effects) observe(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventPointScored:
			i := 0
			if ev.Side == "ai" {
				i = 1
			}
			e.pop[i] = gween.New(scorePopFrom, 1, scorePopTime, ease.OutBounce)
			e.popScale[i] = scorePopFrom
		case core.EventGameOver:
			e.banner = gween.New(0, 1, bannerFadeIn, ease.OutCubic)
			e.bannerAlpha = 0
		case core.EventRestart:
			e.banner = nil
			e.bannerAlpha = 0
		}
	}
}

// update advances every running tween by dt seconds.
func (e *effects) update(dt float32) {
	if e.banner != nil {
		v, done := e.banner.Update(dt)
		e.bannerAlpha = v
		if done {
			e.banner = nil
		}
	}
	for i, tw := range e.pop {
		if tw == nil {
			continue
		}
		v, done := tw.Update(dt)
		e.popScale[i] = v
		if done {
			e.pop[i] = nil
			e.popScale[i] = 1
		}
	}
}

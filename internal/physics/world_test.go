package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/retro-pong/internal/core"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStepIntegratesVelocity(t *testing.T) {
	w := NewWorld(0, 0, 800, 600)
	b := w.Add(NewCircle("ball", 400, 300, 7.5))
	b.SetVelocity(200, -100)

	w.Step(0.5)

	if !approx(b.Pos.X, 500) || !approx(b.Pos.Y, 250) {
		t.Errorf("position = %+v, expected {500 250}", b.Pos)
	}
}

func TestDisabledBodyDoesNotMove(t *testing.T) {
	w := NewWorld(0, 0, 800, 600)
	b := w.Add(NewCircle("ball", 400, 300, 7.5))
	b.SetVelocity(200, 0)
	b.Disabled = true

	w.Step(1)

	if b.Pos.X != 400 {
		t.Errorf("disabled body moved to x=%f", b.Pos.X)
	}
}

func TestWorldBoundsBounceAndReport(t *testing.T) {
	tests := []struct {
		name    string
		pos     core.Vec2
		vel     core.Vec2
		wantHit Side
		wantVel core.Vec2
	}{
		{"top wall", core.Vec2{X: 400, Y: 15}, core.Vec2{X: 0, Y: -600}, SideUp, core.Vec2{X: 0, Y: 600}},
		{"bottom wall", core.Vec2{X: 400, Y: 585}, core.Vec2{X: 0, Y: 600}, SideDown, core.Vec2{X: 0, Y: -600}},
		{"left wall", core.Vec2{X: 15, Y: 300}, core.Vec2{X: -600, Y: 0}, SideLeft, core.Vec2{X: 600, Y: 0}},
		{"right wall", core.Vec2{X: 785, Y: 300}, core.Vec2{X: 600, Y: 0}, SideRight, core.Vec2{X: -600, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld(10, 10, 780, 580)
			b := w.Add(NewCircle("ball", tc.pos.X, tc.pos.Y, 7.5))
			b.Vel = tc.vel
			b.Bounce = core.Vec2{X: 1, Y: 1}
			b.CollideWorldBounds = true
			b.OnWorldBounds = true

			var got Side
			calls := 0
			w.OnWorldBounds(func(body *Body, hit Side) {
				if body != b {
					t.Errorf("handler got body %q", body.Name)
				}
				got = hit
				calls++
			})

			w.Step(0.1)

			if calls != 1 {
				t.Fatalf("handler called %d times, expected 1", calls)
			}
			if got != tc.wantHit {
				t.Errorf("hit = %v, expected %v", got, tc.wantHit)
			}
			if !approx(b.Vel.X, tc.wantVel.X) || !approx(b.Vel.Y, tc.wantVel.Y) {
				t.Errorf("velocity = %+v, expected %+v", b.Vel, tc.wantVel)
			}
			if b.Left() < 10 || b.Right() > 790 || b.Top() < 10 || b.Bottom() > 590 {
				t.Errorf("body left the bounds: %+v", b.Pos)
			}
		})
	}
}

func TestWorldBoundsSilentWithoutFlag(t *testing.T) {
	w := NewWorld(0, 0, 100, 100)
	p := w.Add(NewRect("paddle", 50, 10, 10, 40))
	p.CollideWorldBounds = true
	p.SetVelocity(0, -400)

	called := false
	w.OnWorldBounds(func(*Body, Side) { called = true })
	w.Step(0.1)

	if called {
		t.Error("bounds handler should not fire for bodies without OnWorldBounds")
	}
	if p.Top() != 0 {
		t.Errorf("paddle top = %f, expected clamp to 0", p.Top())
	}
	if p.Vel.Y != 0 {
		t.Errorf("paddle with zero bounce should stop, vy = %f", p.Vel.Y)
	}
}

func TestColliderSeparatesAndCallsBack(t *testing.T) {
	w := NewWorld(0, 0, 800, 600)
	paddle := w.Add(NewRect("paddle", 100, 300, 15, 100))
	paddle.Immovable = true
	ball := w.Add(NewCircle("ball", 112, 300, 7.5))
	ball.SetVelocity(-200, 0)
	ball.Bounce = core.Vec2{X: 1, Y: 1}

	var gotA, gotB *Body
	w.AddCollider(ball, paddle, func(a, b *Body) {
		gotA, gotB = a, b
	})

	w.Step(1.0 / 60)

	if gotA != ball || gotB != paddle {
		t.Fatal("collider callback not invoked with registered order")
	}
	if ball.Left() < paddle.Right()-1e-9 {
		t.Errorf("ball still overlaps paddle: ball.Left=%f paddle.Right=%f", ball.Left(), paddle.Right())
	}
	if ball.Vel.X <= 0 {
		t.Errorf("ball should bounce right, vx = %f", ball.Vel.X)
	}
	if paddle.Pos.X != 100 {
		t.Errorf("immovable paddle moved to %f", paddle.Pos.X)
	}
}

func TestColliderSkipsDisabled(t *testing.T) {
	w := NewWorld(0, 0, 800, 600)
	paddle := w.Add(NewRect("paddle", 100, 300, 15, 100))
	ball := w.Add(NewCircle("ball", 100, 300, 7.5))
	ball.Disabled = true

	called := false
	w.AddCollider(ball, paddle, func(*Body, *Body) { called = true })
	w.Step(1.0 / 60)

	if called {
		t.Error("disabled bodies must not collide")
	}
}

func TestOverlaps(t *testing.T) {
	rect := NewRect("r", 0, 0, 10, 10)

	tests := []struct {
		name string
		b    *Body
		want bool
	}{
		{"circle inside", NewCircle("c", 0, 0, 2), true},
		{"circle near corner but outside", NewCircle("c", 7, 7, 2), false},
		{"circle touching edge region", NewCircle("c", 6, 0, 2), true},
		{"rect overlapping", NewRect("r2", 8, 8, 10, 10), true},
		{"rect adjacent", NewRect("r2", 10, 0, 10, 10), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(rect, tc.b); got != tc.want {
				t.Errorf("Overlaps = %v, expected %v", got, tc.want)
			}
			if got := Overlaps(tc.b, rect); got != tc.want {
				t.Errorf("Overlaps (reversed) = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestMoveTo(t *testing.T) {
	b := NewRect("paddle", 100, 300, 15, 100)
	MoveTo(b, 100, 375, 0.075)

	if !approx(b.Vel.Y, 1000) || b.Vel.X != 0 {
		t.Errorf("velocity = %+v, expected {0 1000}", b.Vel)
	}

	MoveTo(b, 100, 0, 0)
	if b.Vel != (core.Vec2{}) {
		t.Errorf("non-positive maxTime should stop, got %+v", b.Vel)
	}
}

func TestSideString(t *testing.T) {
	if s := (SideUp | SideLeft).String(); s != "up|left" {
		t.Errorf("String() = %q", s)
	}
	if !(SideLeft | SideDown).Has(SideLeft) {
		t.Error("Has(SideLeft) should be true")
	}
	if Side(0).Has(0) {
		t.Error("Has(0) should be false")
	}
}

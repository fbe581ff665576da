package physics

import "math"

// CollideFunc is called after two bodies touched and were separated.
// Arguments are passed in the order the collider was registered.
type CollideFunc func(a, b *Body)

// BoundsFunc is called when a body with OnWorldBounds touched the world
// bounds. hit names every side touched during the step.
type BoundsFunc func(b *Body, hit Side)

type collider struct {
	a, b *Body
	fn   CollideFunc
}

// World owns bodies, their bounds and the collision dispatch table.
// Handlers are registered once at setup and invoked synchronously from Step.
type World struct {
	X, Y, W, H float64

	bodies    []*Body
	colliders []collider
	onBounds  []BoundsFunc
}

// NewWorld creates a world whose bounds are the rectangle (x, y, w, h).
func NewWorld(x, y, w, h float64) *World {
	return &World{X: x, Y: y, W: w, H: h}
}

// SetBounds replaces the world bounds.
func (w *World) SetBounds(x, y, width, height float64) {
	w.X, w.Y, w.W, w.H = x, y, width, height
}

// Add registers a body with the world and returns it.
func (w *World) Add(b *Body) *Body {
	w.bodies = append(w.bodies, b)
	return b
}

// Bodies returns the registered bodies in insertion order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// AddCollider registers a collision pair. fn may be nil when only separation
// is wanted.
func (w *World) AddCollider(a, b *Body, fn CollideFunc) {
	w.colliders = append(w.colliders, collider{a: a, b: b, fn: fn})
}

// OnWorldBounds registers a world-bounds handler.
func (w *World) OnWorldBounds(fn BoundsFunc) {
	w.onBounds = append(w.onBounds, fn)
}

// Step advances the simulation by dt seconds: integrate, resolve bounds,
// then resolve colliders.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}

	for _, b := range w.bodies {
		if b.Disabled {
			continue
		}
		b.Pos.X += b.Vel.X * dt
		b.Pos.Y += b.Vel.Y * dt
	}

	for _, b := range w.bodies {
		if b.Disabled || !b.CollideWorldBounds {
			continue
		}
		hit := w.resolveBounds(b)
		if hit != 0 && b.OnWorldBounds {
			for _, fn := range w.onBounds {
				fn(b, hit)
			}
		}
	}

	for _, c := range w.colliders {
		if c.a.Disabled || c.b.Disabled {
			continue
		}
		if !Overlaps(c.a, c.b) {
			continue
		}
		separate(c.a, c.b)
		if c.fn != nil {
			c.fn(c.a, c.b)
		}
	}
}

// resolveBounds clamps b inside the world and reflects its velocity by its
// bounce factor. Returns the sides touched.
func (w *World) resolveBounds(b *Body) Side {
	var hit Side

	if b.Left() < w.X {
		b.Pos.X = w.X + b.W/2
		b.Vel.X = math.Abs(b.Vel.X) * b.Bounce.X
		hit |= SideLeft
	} else if b.Right() > w.X+w.W {
		b.Pos.X = w.X + w.W - b.W/2
		b.Vel.X = -math.Abs(b.Vel.X) * b.Bounce.X
		hit |= SideRight
	}

	if b.Top() < w.Y {
		b.Pos.Y = w.Y + b.H/2
		b.Vel.Y = math.Abs(b.Vel.Y) * b.Bounce.Y
		hit |= SideUp
	} else if b.Bottom() > w.Y+w.H {
		b.Pos.Y = w.Y + w.H - b.H/2
		b.Vel.Y = -math.Abs(b.Vel.Y) * b.Bounce.Y
		hit |= SideDown
	}

	return hit
}

// Overlaps reports whether two bodies intersect. Rectangles use AABB tests;
// a circle against a rectangle uses the closest point on the rectangle.
func Overlaps(a, b *Body) bool {
	switch {
	case a.Shape == ShapeCircle && b.Shape == ShapeRect:
		return circleRect(a, b)
	case a.Shape == ShapeRect && b.Shape == ShapeCircle:
		return circleRect(b, a)
	case a.Shape == ShapeCircle && b.Shape == ShapeCircle:
		r := a.W/2 + b.W/2
		dx, dy := a.Pos.X-b.Pos.X, a.Pos.Y-b.Pos.Y
		return dx*dx+dy*dy < r*r
	default:
		return a.Left() < b.Right() && b.Left() < a.Right() &&
			a.Top() < b.Bottom() && b.Top() < a.Bottom()
	}
}

func circleRect(c, r *Body) bool {
	cx := math.Max(r.Left(), math.Min(c.Pos.X, r.Right()))
	cy := math.Max(r.Top(), math.Min(c.Pos.Y, r.Bottom()))
	dx, dy := c.Pos.X-cx, c.Pos.Y-cy
	rad := c.W / 2
	return dx*dx+dy*dy < rad*rad
}

// separate pushes the movable body (or both, half each) out along the axis of
// least penetration and applies bounce to the velocity on that axis.
func separate(a, b *Body) {
	if a.Immovable && b.Immovable {
		return
	}

	overlapX := math.Min(a.Right(), b.Right()) - math.Max(a.Left(), b.Left())
	overlapY := math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Top(), b.Top())
	if overlapX <= 0 || overlapY <= 0 {
		return
	}

	shareA, shareB := 0.5, 0.5
	switch {
	case a.Immovable:
		shareA, shareB = 0, 1
	case b.Immovable:
		shareA, shareB = 1, 0
	}

	if overlapX < overlapY {
		dir := 1.0
		if a.Pos.X < b.Pos.X {
			dir = -1
		}
		a.Pos.X += dir * overlapX * shareA
		b.Pos.X -= dir * overlapX * shareB
		if shareA > 0 {
			a.Vel.X = dir * math.Abs(a.Vel.X) * a.Bounce.X
		}
		if shareB > 0 {
			b.Vel.X = -dir * math.Abs(b.Vel.X) * b.Bounce.X
		}
		return
	}

	dir := 1.0
	if a.Pos.Y < b.Pos.Y {
		dir = -1
	}
	a.Pos.Y += dir * overlapY * shareA
	b.Pos.Y -= dir * overlapY * shareB
	if shareA > 0 {
		a.Vel.Y = dir * math.Abs(a.Vel.Y) * a.Bounce.Y
	}
	if shareB > 0 {
		b.Vel.Y = -dir * math.Abs(b.Vel.Y) * b.Bounce.Y
	}
}

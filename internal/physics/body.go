// Package physics is a small arcade-style physics world: axis-aligned bodies
// with constant-velocity integration, world-bound collisions reported per side,
// and collider pairs resolved by minimum-penetration separation.
//
// It covers exactly what a paddle game needs and nothing more. Positions are
// body centers in world units; velocities are units per second.
package physics

import "github.com/vovakirdan/retro-pong/internal/core"

// Shape is the collision shape of a body.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// Side is a bit set of world-bound sides.
type Side uint8

const (
	SideUp Side = 1 << iota
	SideDown
	SideLeft
	SideRight
)

// Has reports whether s includes every side in o.
func (s Side) Has(o Side) bool {
	return s&o == o && o != 0
}

// String returns a compact representation such as "up|left".
func (s Side) String() string {
	if s == 0 {
		return "none"
	}
	names := []struct {
		side Side
		name string
	}{
		{SideUp, "up"}, {SideDown, "down"}, {SideLeft, "left"}, {SideRight, "right"},
	}
	out := ""
	for _, n := range names {
		if s&n.side != 0 {
			if out != "" {
				out += "|"
			}
			out += n.name
		}
	}
	return out
}

// Body is a simulated object.
type Body struct {
	Name  string
	Shape Shape
	Pos   core.Vec2 // center
	Vel   core.Vec2
	W, H  float64 // for circles both equal the diameter

	// Immovable bodies are never pushed by collider separation.
	Immovable bool
	// Bounce is the restitution applied per axis when the body is stopped by
	// the world bounds or by another body. 0 stops, 1 reflects fully.
	Bounce core.Vec2
	// CollideWorldBounds keeps the body inside the world bounds.
	CollideWorldBounds bool
	// OnWorldBounds makes the world report bound contacts for this body.
	OnWorldBounds bool
	// Disabled bodies neither move nor collide.
	Disabled bool
}

// NewRect creates a rectangular body centered at (x, y).
func NewRect(name string, x, y, w, h float64) *Body {
	return &Body{Name: name, Shape: ShapeRect, Pos: core.Vec2{X: x, Y: y}, W: w, H: h}
}

// NewCircle creates a circular body centered at (x, y).
func NewCircle(name string, x, y, radius float64) *Body {
	d := radius * 2
	return &Body{Name: name, Shape: ShapeCircle, Pos: core.Vec2{X: x, Y: y}, W: d, H: d}
}

// Left returns the x-coordinate of the left edge.
func (b *Body) Left() float64 { return b.Pos.X - b.W/2 }

// Right returns the x-coordinate of the right edge.
func (b *Body) Right() float64 { return b.Pos.X + b.W/2 }

// Top returns the y-coordinate of the top edge.
func (b *Body) Top() float64 { return b.Pos.Y - b.H/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (b *Body) Bottom() float64 { return b.Pos.Y + b.H/2 }

// SetVelocity sets both velocity components.
func (b *Body) SetVelocity(vx, vy float64) {
	b.Vel = core.Vec2{X: vx, Y: vy}
}

// Stop zeroes the velocity.
func (b *Body) Stop() {
	b.Vel = core.Vec2{}
}

// SetPosition moves the body center.
func (b *Body) SetPosition(x, y float64) {
	b.Pos = core.Vec2{X: x, Y: y}
}

// MoveTo points the body at (x, y) with the speed that covers the distance in
// maxTime seconds, the seek helper used for pointer steering. A non-positive
// maxTime stops the body.
func MoveTo(b *Body, x, y, maxTime float64) {
	if maxTime <= 0 {
		b.Stop()
		return
	}
	b.Vel = core.Vec2{X: (x - b.Pos.X) / maxTime, Y: (y - b.Pos.Y) / maxTime}
}

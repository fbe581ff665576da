package pong

import "math"

// Segment is a line between two points.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// GridSpec describes the retro perspective floor.
type GridSpec struct {
	Width, Height float64
	Horizon       float64 // fraction of Height where the floor starts
	Columns       int     // lines fanning out from the vanishing point
	Rows          int     // horizontal lines between horizon and bottom
	Phase         float64 // scroll offset in [0, 1), moves rows toward the viewer
}

// DefaultGrid returns the grid drawn behind a field of the given size.
func DefaultGrid(w, h float64) GridSpec {
	return GridSpec{Width: w, Height: h, Horizon: 0.45, Columns: 16, Rows: 10}
}

// Lines returns the grid segments: first the horizon, then the fan of column
// lines, then the rows ordered from the horizon to the bottom edge.
//
// Columns start at the vanishing point (center of the horizon) and hit the
// bottom edge evenly spaced over three widths of the field, then are clipped
// to the field. Row spacing grows quadratically with distance from the
// horizon.
func (s GridSpec) Lines() []Segment {
	if s.Width <= 0 || s.Height <= 0 {
		return nil
	}

	horizonY := s.Height * s.Horizon
	vx := s.Width / 2
	depth := s.Height - horizonY

	lines := make([]Segment, 0, 1+s.Columns+1+s.Rows)
	lines = append(lines, Segment{0, horizonY, s.Width, horizonY})

	if s.Columns > 0 {
		span := s.Width * 3
		for i := 0; i <= s.Columns; i++ {
			bx := vx - span/2 + span*float64(i)/float64(s.Columns)
			lines = append(lines, clipToField(Segment{vx, horizonY, bx, s.Height}, s.Width))
		}
	}

	phase := s.Phase - math.Floor(s.Phase)
	for k := 0; k < s.Rows; k++ {
		t := (float64(k) + phase) / float64(s.Rows)
		y := horizonY + depth*t*t
		if y <= horizonY {
			continue
		}
		lines = append(lines, Segment{0, y, s.Width, y})
	}

	return lines
}

// clipToField cuts a segment running downward from the vanishing point where
// it leaves the [0, w] horizontal range.
func clipToField(seg Segment, w float64) Segment {
	dx := seg.X2 - seg.X1
	if dx == 0 {
		return seg
	}
	edge := -1.0
	switch {
	case seg.X2 < 0:
		edge = 0
	case seg.X2 > w:
		edge = w
	}
	if edge < 0 {
		return seg
	}
	t := (edge - seg.X1) / dx
	seg.Y2 = seg.Y1 + (seg.Y2-seg.Y1)*t
	seg.X2 = edge
	return seg
}

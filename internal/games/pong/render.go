package pong

import (
	"fmt"
	"math"

	"github.com/vovakirdan/retro-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '┊'
	GridChar   = '·'
)

// Minimum screen size for a playable field.
const (
	MinScreenW = 32
	MinScreenH = 12
)

// Render draws the field scaled to the screen. The world bounds map to the
// screen border.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small", core.ColorRed)
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	p := g.mc.Params
	v := newViewport(p, w, h)

	if g.retro {
		for _, seg := range DefaultGrid(p.FieldW, p.FieldH).Lines() {
			v.line(dst, seg, GridChar, core.ColorMagenta)
		}
	}

	dst.DrawBox(core.NewRect(0, 0, w, h), core.ColorDarkGray)

	centerX := v.x(p.CenterX())
	for y := 1; y < h-1; y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorDarkGray)
	}

	snap := g.Snapshot()

	v.paddle(dst, p.PlayerX(), snap.PlayerY, p.PaddleH, core.ColorBrightCyan)
	v.paddle(dst, p.AIX(), snap.AIY, p.PaddleH, core.ColorBrightRed)

	if snap.BallVisible {
		dst.SetColored(v.x(snap.BallX), v.y(snap.BallY), BallChar, core.ColorBrightWhite)
	}

	scoreY := core.Clamp(v.y(50), 1, h-2)
	playerText := fmt.Sprintf("%d", snap.PlayerScore)
	aiText := fmt.Sprintf("%d", snap.AIScore)
	dst.DrawTextColored(w/4-len(playerText)/2, scoreY, playerText, core.ColorBrightWhite)
	dst.DrawTextColored(w*3/4-len(aiText)/2, scoreY, aiText, core.ColorBrightWhite)

	if version := g.cfg.Style.VersionText; version != "" {
		dst.DrawTextColored(2, h-1, version, core.ColorGray)
	}

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	}

	if banner := snap.Banner(); banner != "" {
		drawCenteredMessage(dst, banner,
			fmt.Sprintf("%d - %d  |  Click or press R to restart", snap.PlayerScore, snap.AIScore),
			core.ColorRed)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)

	// Draw text
	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, c)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawTextColored(subtitleX, boxY+3, subtitle, core.ColorWhite)
}

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(p Params, w, h int) viewport {
	return viewport{sx: float64(w) / p.FieldW, sy: float64(h) / p.FieldH, w: w, h: h}
}

func (v viewport) x(wx float64) int {
	return core.Clamp(int(wx*v.sx), 0, v.w-1)
}

func (v viewport) y(wy float64) int {
	return core.Clamp(int(wy*v.sy), 0, v.h-1)
}

// paddle draws a paddle column covering at least one cell, kept off the border.
func (v viewport) paddle(dst *core.Screen, cx, cy, height float64, c core.Color) {
	x := v.x(cx)
	top := core.Clamp(v.y(cy-height/2), 1, v.h-2)
	bottom := core.Clamp(int(math.Ceil((cy+height/2)*v.sy))-1, top, v.h-2)
	dst.DrawVLine(x, top, bottom-top+1, PaddleChar, c)
}

// line rasterizes a world segment with Bresenham's algorithm.
func (v viewport) line(dst *core.Screen, seg Segment, r rune, c core.Color) {
	x0, y0 := v.x(seg.X1), v.y(seg.Y1)
	x1, y1 := v.x(seg.X2), v.y(seg.Y2)

	dx := core.Abs(x1 - x0)
	dy := -core.Abs(y1 - y0)
	stepX, stepY := 1, 1
	if x0 > x1 {
		stepX = -1
	}
	if y0 > y1 {
		stepY = -1
	}
	e := dx + dy

	for {
		dst.SetColored(x0, y0, r, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += stepX
		}
		if e2 <= dx {
			e += dx
			y0 += stepY
		}
	}
}

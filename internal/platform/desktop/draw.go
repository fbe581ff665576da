package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/retro-pong/internal/audio"
	"github.com/vovakirdan/retro-pong/internal/games/pong"
)

var (
	colorBackground = color.RGBA{R: 8, G: 6, B: 20, A: 255}
	colorGrid       = color.RGBA{R: 200, G: 40, B: 200, A: 110}
	colorBounds     = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	colorNet        = color.RGBA{R: 70, G: 70, B: 90, A: 255}
	colorPlayer     = color.RGBA{R: 80, G: 220, B: 255, A: 255}
	colorAI         = color.RGBA{R: 255, G: 90, B: 90, A: 255}
	colorBall       = color.White
	colorText       = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	colorDim        = color.RGBA{R: 140, G: 140, B: 160, A: 255}
	colorError      = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	colorShade      = color.RGBA{A: 170}
)

// Draw renders the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	p := a.game.Params()
	snap := a.game.Snapshot()

	if a.game.Retro() {
		grid := pong.DefaultGrid(p.FieldW, p.FieldH)
		grid.Phase = a.gridPhase
		for _, seg := range grid.Lines() {
			vector.StrokeLine(screen, f32(seg.X1), f32(seg.Y1), f32(seg.X2), f32(seg.Y2), 1, colorGrid, true)
		}
	}

	inset := p.BoundsInset
	vector.StrokeRect(screen, f32(inset), f32(inset), f32(p.FieldW-2*inset), f32(p.FieldH-2*inset), 2, colorBounds, false)

	for y := inset; y < p.FieldH-inset; y += 30 {
		vector.DrawFilledRect(screen, f32(p.CenterX()-2), f32(y), 4, 15, colorNet, false)
	}

	drawPaddle(screen, p.PlayerX(), snap.PlayerY, p, colorPlayer)
	drawPaddle(screen, p.AIX(), snap.AIY, p, colorAI)

	if snap.BallVisible {
		vector.DrawFilledCircle(screen, f32(snap.BallX), f32(snap.BallY), f32(p.BallSize/2), colorBall, true)
	}

	a.drawScore(screen, snap.PlayerScore, p.FieldW*0.25, a.effects.popScale[0])
	a.drawScore(screen, snap.AIScore, p.FieldW*0.75, a.effects.popScale[1])

	if v := a.game.Config().Style.VersionText; v != "" {
		drawText(screen, v, a.smallFace, 20, p.FieldH-30, text.AlignStart, colorDim, 1)
	}

	a.drawSoundButton(screen)

	if snap.Paused {
		a.drawOverlay(screen, p, "PAUSED", "Press P to resume", 1)
	}
	if banner := snap.Banner(); banner != "" {
		a.drawOverlay(screen, p, banner,
			fmt.Sprintf("%d - %d   Click or press R to restart", snap.PlayerScore, snap.AIScore),
			a.effects.bannerAlpha)
	}
}

func drawPaddle(dst *ebiten.Image, cx, cy float64, p pong.Params, c color.Color) {
	vector.DrawFilledRect(dst, f32(cx-p.PaddleW/2), f32(cy-p.PaddleH/2), f32(p.PaddleW), f32(p.PaddleH), c, false)
}

// drawScore draws a score centered on x, scaled around its center.
func (a *App) drawScore(dst *ebiten.Image, score int, x float64, scale float32) {
	drawText(dst, fmt.Sprint(score), a.scoreFace, x, 40, text.AlignCenter, colorText, float64(scale))
}

func (a *App) drawSoundButton(dst *ebiten.Image) {
	r := a.soundButton()
	c := color.Color(colorDim)
	if a.sound.Status() == audio.StatusError {
		c = colorError
	}
	drawText(dst, a.sound.Label(), a.smallFace, r.X, r.Y, text.AlignStart, c, 1)
}

// drawOverlay shades the field and shows a title with a hint under it.
// alpha fades the whole overlay.
func (a *App) drawOverlay(dst *ebiten.Image, p pong.Params, title, hint string, alpha float32) {
	if alpha <= 0 {
		return
	}
	shade := colorShade
	shade.A = uint8(float32(shade.A) * alpha)
	vector.DrawFilledRect(dst, 0, f32(p.FieldH/2-70), f32(p.FieldW), 140, shade, false)

	cx := p.FieldW / 2
	drawTextAlpha(dst, title, a.bannerFace, cx, p.FieldH/2-60, colorText, alpha)
	drawTextAlpha(dst, hint, a.smallFace, cx, p.FieldH/2+20, colorDim, alpha)
}

// drawText draws s with its top edge at y. scale grows the text around the
// anchor point.
func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, align text.Align, c color.Color, scale float64) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = align
	if scale != 1 {
		_, h := text.Measure(s, face, face.Size)
		op.GeoM.Translate(0, -h/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(0, h/2)
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

func drawTextAlpha(dst *ebiten.Image, s string, face *text.GoTextFace, cx, y float64, c color.Color, alpha float32) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(dst, s, face, op)
}

func f32(v float64) float32 {
	return float32(v)
}

// Package desktop runs Pong in a window with Ebitengine. It reads keyboard,
// mouse and touch input, plays the music loop behind the sound button and
// draws the field with vector shapes and text.
package desktop

import (
	"bytes"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/retro-pong/internal/audio"
	"github.com/vovakirdan/retro-pong/internal/core"
	"github.com/vovakirdan/retro-pong/internal/games/pong"
	"github.com/vovakirdan/retro-pong/internal/logging"
)

// gridScroll is how many grid rows per second scroll toward the viewer.
const gridScroll = 0.5

// App is the ebiten.Game running one Pong match.
type App struct {
	game    *pong.Game
	runtime core.RuntimeConfig
	logger  *log.Logger
	sound   *audio.Controller

	scoreFace  *text.GoTextFace
	smallFace  *text.GoTextFace
	bannerFace *text.GoTextFace

	pointer   pointerTracker
	effects   *effects
	gridPhase float64
}

// New creates the window front end for game and starts a match. A music
// file that cannot be loaded fails with pong.ErrSceneInit.
func New(game *pong.Game, runtime core.RuntimeConfig, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.Default()
	}
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("desktop: %w: font: %w", pong.ErrSceneInit, err)
	}

	cfg := game.Config().Audio
	var backend audio.Backend
	if cfg.Enabled {
		track, err := loadTrack(cfg.MusicPath)
		if err != nil {
			return nil, fmt.Errorf("desktop: %w: music: %w", pong.ErrSceneInit, err)
		}
		backend = newMusicBackend(track, cfg.Volume)
	}
	timeout := time.Duration(cfg.ResumeTimeoutMS) * time.Millisecond

	a := &App{
		game:       game,
		runtime:    runtime,
		logger:     logger,
		sound:      audio.NewController(backend, timeout, logger),
		scoreFace:  &text.GoTextFace{Source: src, Size: 48},
		smallFace:  &text.GoTextFace{Source: src, Size: 16},
		bannerFace: &text.GoTextFace{Source: src, Size: 56},
		effects:    newEffects(),
	}

	game.Reset(runtime)
	logger.Info("match started", "game", game.ID(), "seed", runtime.Seed)
	return a, nil
}

// Update advances the match by one tick.
func (a *App) Update() error {
	dt := a.runtime.TickDuration()

	in := core.NewInputFrame()
	readKeys(&in)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	ptr, soundPressed := a.pointer.update(samplePointer(), a.soundButton())
	in.Pointer = ptr
	if soundPressed || in.Has(core.ActionToggleSound) {
		if err := a.sound.Toggle(); err != nil {
			a.logger.Warn("sound toggle failed", "error", err)
		}
	}
	a.sound.Update(dt)

	res := a.game.Step(in)
	logging.Events(a.logger, res)

	a.effects.observe(res.Events)
	a.effects.update(float32(dt.Seconds()))

	if a.game.Retro() && !res.State.Paused && !res.State.GameOver {
		a.gridPhase += gridScroll * dt.Seconds()
	}
	return nil
}

// Layout makes the logical screen the field, so cursor positions are world
// coordinates.
func (a *App) Layout(_, _ int) (int, int) {
	w, h := a.game.FieldSize()
	return int(w), int(h)
}

// soundButton returns the sound button area: the top-right corner.
func (a *App) soundButton() rect {
	w, _ := a.game.FieldSize()
	lw, lh := text.Measure(a.sound.Label(), a.smallFace, a.smallFace.Size)
	return rect{X: w - lw - 16, Y: 12, W: lw, H: lh}
}

// Run opens the window and plays until it is closed.
func Run(a *App, title string) error {
	w, h := a.game.FieldSize()
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if a.runtime.TickRate > 0 {
		ebiten.SetTPS(a.runtime.TickRate)
	}

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}

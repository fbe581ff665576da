package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-pong/internal/audio"
	"github.com/vovakirdan/retro-pong/internal/core"
	"github.com/vovakirdan/retro-pong/internal/logging"
	"github.com/vovakirdan/retro-pong/internal/registry"
)

// fieldSizer is implemented by games that work in world units rather than
// screen cells. The model uses it to map mouse cells to world coordinates.
type fieldSizer interface {
	FieldSize() (w, h float64)
}

// Options configure a terminal session.
type Options struct {
	Logger *log.Logger
	// Sound drives the sound label. Nil means a controller with no backend,
	// which reports the terminal has no audio output.
	Sound *audio.Controller
}

// Model is the Bubble Tea model for running a match.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	hold       *keyHold
	sound      *audio.Controller
	logger     *log.Logger
	quitting   bool
	back       bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.NewController(nil, 0, logger)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		hold:       newKeyHold(holdWindow(cfg.TickRate)),
		sound:      sound,
		logger:     logger,
	}
}

// gameRows is the screen height left for the game after the help line.
func gameRows(h int) int {
	return max(1, h-1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("match started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		m.back = true
		return m, tea.Quit
	case core.ActionToggleSound:
		m.toggleSound()
	case core.ActionUp, core.ActionDown:
		m.hold.Press(action)
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse turns left-button mouse events into pointer state. A press on
// the sound label toggles sound and never reaches the game.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ptr := &m.inputFrame.Pointer
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if soundButtonRect(m.screen.Width(), m.sound.Label()).Contains(msg.X, msg.Y) {
			m.toggleSound()
			return m, nil
		}
		ptr.X, ptr.Y = m.toWorld(msg.X, msg.Y)
		ptr.Down = true
		ptr.Pressed = true
	case tea.MouseActionMotion:
		if ptr.Down {
			ptr.X, ptr.Y = m.toWorld(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		if ptr.Down {
			ptr.X, ptr.Y = m.toWorld(msg.X, msg.Y)
			ptr.Down = false
			ptr.Released = true
		}
	}

	return m, nil
}

// toWorld maps the center of a screen cell to world coordinates. Games
// without a field size get cell coordinates.
func (m Model) toWorld(cx, cy int) (x, y float64) {
	x, y = float64(cx), float64(cy)
	fs, ok := m.game.(fieldSizer)
	if !ok {
		return x, y
	}
	fw, fh := fs.FieldSize()
	w, h := m.screen.Width(), m.screen.Height()
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return (x + 0.5) * fw / float64(w), (y + 0.5) * fh / float64(h)
}

func (m Model) toggleSound() {
	if err := m.sound.Toggle(); err != nil {
		m.logger.Warn("sound toggle failed", "error", err)
	}
}

// soundButtonRect is where the sound label is drawn: the top row, right aligned.
func soundButtonRect(screenW int, label string) core.Rect {
	n := len([]rune(label))
	return core.NewRect(max(0, screenW-n-2), 0, n, 1)
}

// handleResize processes window resize events. The field is in world units,
// so the match keeps running at the new scale.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Apply(&m.inputFrame)
	m.sound.Update(m.config.TickDuration())

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	logging.Events(m.logger, result)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)

	label := m.sound.Label()
	c := core.ColorGray
	if m.sound.Status() == audio.StatusError {
		c = core.ColorRed
	}
	r := soundButtonRect(m.screen.Width(), label)
	m.screen.DrawTextColored(r.X, r.Y, label, c)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// WantsMenu reports whether the player left the match for the menu.
func (m Model) WantsMenu() bool {
	return m.back
}

// Run plays game until the player quits or goes back. It reports whether the
// player asked for the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.WantsMenu(), nil
	}
	return false, nil
}

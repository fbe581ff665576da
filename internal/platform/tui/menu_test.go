package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-pong/internal/config"
	"github.com/vovakirdan/retro-pong/internal/core"
	"github.com/vovakirdan/retro-pong/internal/games/pong"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "")

	ids := map[string]bool{}
	for _, item := range m.items {
		ids[item.GameID] = true
	}
	if !ids[pong.IDClassic] || !ids[pong.IDRetro] {
		t.Errorf("menu items = %+v, want both pong variants", m.items)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "")
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil {
		t.Fatal("nothing selected")
	}
	if sel.GameID != m.items[1].GameID {
		t.Errorf("selected %q, want %q", sel.GameID, m.items[1].GameID)
	}
}

func TestMenuDifficultyCycles(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyHard)
	if m.Difficulty() != config.DifficultyHard {
		t.Fatalf("preselected %q, want hard", m.Difficulty())
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("right from hard = %q, want fixed", m.Difficulty())
	}
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != "" {
		t.Errorf("right from fixed = %q, want config default", m.Difficulty())
	}
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("left wraps to %q, want fixed", m.Difficulty())
	}
}

func TestMenuQuit(t *testing.T) {
	m := menuUpdate(t, NewMenuModel(core.DefaultConfig(), ""), runeKey('q'))
	if !m.IsQuitting() || m.Selected() != nil {
		t.Error("q should quit without a selection")
	}
	if m.View() != "" {
		t.Error("quitting menu should render nothing")
	}
}

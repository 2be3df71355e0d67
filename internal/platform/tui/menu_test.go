package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

func sendMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected MenuModel", next)
	}
	return mm
}

func TestMenuSelectsVariant(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyDown}) // stays on the last item
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil {
		t.Fatal("Selected() = nil after Enter")
	}
	if sel.GameID != invaders.IDCurve {
		t.Errorf("Selected().GameID = %q, expected %q", sel.GameID, invaders.IDCurve)
	}
}

func TestMenuShowsDescription(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	view := m.View()

	if !strings.Contains(view, "Invaders") {
		t.Error("View() should list the variants")
	}
	if !strings.Contains(view, m.items[0].Description) || m.items[0].Description == "" {
		t.Errorf("View() should describe the highlighted variant, got:\n%s", view)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := sendMenu(t, NewMenuModel(nil, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("WantsScoreboard() = false after Tab")
	}

	m = sendMenu(t, NewMenuModel(nil, core.DefaultConfig()), runeKey('q'))
	if !m.IsQuitting() {
		t.Error("IsQuitting() = false after q")
	}
	if m.View() != "" {
		t.Error("View() should be empty once quitting")
	}
}

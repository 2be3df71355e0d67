package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

type modelHarness struct {
	t     *testing.T
	model Model
	game  *invaders.Game
	now   time.Time
}

func newHarness(t *testing.T, opts Options) *modelHarness {
	t.Helper()
	game := invaders.NewWithConfig(config.DefaultInvadersConfig())
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = t.TempDir()
	}

	h := &modelHarness{t: t, model: NewModel(game, cfg, opts), game: game, now: time.Now()}
	h.model.Init()
	return h
}

func (h *modelHarness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	m, ok := next.(Model)
	if !ok {
		h.t.Fatalf("Update() returned %T, expected Model", next)
	}
	h.model = m
	return cmd
}

func (h *modelHarness) tick() {
	h.now = h.now.Add(16 * time.Millisecond)
	h.send(TickMsg(h.now))
}

func TestModelWaitsForKeyboard(t *testing.T) {
	h := newHarness(t, Options{})

	for i := 0; i < 5; i++ {
		h.tick()
	}
	if got := h.game.Phase(); got != invaders.PhaseWaitForDevice {
		t.Fatalf("Phase() = %v without any key, expected %v", got, invaders.PhaseWaitForDevice)
	}

	h.send(runeKey('z'))
	h.tick()
	if got := h.game.Phase(); got != invaders.PhaseSplash {
		t.Errorf("Phase() = %v after a key, expected %v", got, invaders.PhaseSplash)
	}
}

func TestModelRecordsMatchOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	h := newHarness(t, Options{Store: store, SkipDeviceWait: true})
	h.tick() // Startup -> Wait
	h.tick() // Wait -> Splash
	h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	h.tick() // Splash -> Playing

	if got := h.game.Phase(); got != invaders.PhasePlaying {
		t.Fatalf("Phase() = %v, expected %v", got, invaders.PhasePlaying)
	}

	h.game.Aliens()[0].Pos.Y = -100
	h.tick()
	if !h.model.State().GameOver {
		t.Fatal("State().GameOver should be set once the swarm breaks through")
	}
	h.tick()
	h.tick()

	matches, err := store.RecentMatches("", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("RecentMatches() returned %d matches, expected 1", len(matches))
	}
	if matches[0].Won || matches[0].GameID != invaders.IDStateMachine || matches[0].Movement != config.MovementStateMachine {
		t.Errorf("recorded match = %+v, expected a lost state machine match", matches[0])
	}
}

func TestModelQuit(t *testing.T) {
	h := newHarness(t, Options{})

	cmd := h.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("ctrl+c should return a quit command")
	}
	if !h.model.IsQuitting() {
		t.Error("IsQuitting() should be true after ctrl+c")
	}
	if h.model.View() != "" {
		t.Error("View() should be empty while quitting")
	}
}

func TestModelBackToMenu(t *testing.T) {
	h := newHarness(t, Options{SkipDeviceWait: true, AllowBack: true})
	h.tick()
	h.tick()
	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	if h.model.BackToMenu() {
		t.Error("Back should be ignored while a match is not over or paused")
	}

	h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	h.tick()
	h.send(runeKey('p'))
	h.tick()
	if !h.model.State().Paused {
		t.Fatal("State().Paused should be set after p")
	}
	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	if !h.model.BackToMenu() {
		t.Error("Back while paused should return to the menu")
	}
}

func TestModelEscPausesStandalone(t *testing.T) {
	h := newHarness(t, Options{SkipDeviceWait: true})
	h.tick()
	h.tick()
	h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	h.tick()
	if h.game.Phase() != invaders.PhasePlaying {
		t.Fatalf("Phase() = %v, expected %v", h.game.Phase(), invaders.PhasePlaying)
	}

	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	h.tick()
	if !h.model.State().Paused {
		t.Fatal("Esc while playing should pause")
	}

	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	h.tick()
	if h.model.State().Paused {
		t.Error("Esc while paused should resume without a menu to return to")
	}
	if h.model.BackToMenu() {
		t.Error("BackToMenu() should stay false without AllowBack")
	}
}

func TestModelView(t *testing.T) {
	h := newHarness(t, Options{SkipDeviceWait: true})
	h.tick()
	h.tick()

	if view := h.model.View(); view == "" {
		t.Error("View() should render the splash screen")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	h := newHarness(t, Options{SkipDeviceWait: true, ScreenshotDir: dir})
	h.tick()

	h.send(tea.KeyMsg{Type: tea.KeyCtrlS})

	pngs, _ := filepath.Glob(filepath.Join(dir, "*.png"))
	txts, _ := filepath.Glob(filepath.Join(dir, "*.txt"))
	if len(pngs) != 1 || len(txts) != 1 {
		t.Errorf("screenshot wrote %d png and %d txt files, expected 1 of each", len(pngs), len(txts))
	}
}

package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Options wires the optional services of a game session.
type Options struct {
	Store   *storage.Store
	Logger  *log.Logger
	Sound   core.EntitySink // Receives every intent; nil for silence
	Metrics *Metrics

	// SkipDeviceWait reports an input device as present from the first tick.
	SkipDeviceWait bool

	// HoldWindow is how long a steering key stays held after a press.
	HoldWindow time.Duration

	// AllowBack lets Back leave the game from the end screen or pause.
	// A standalone program quits; a session returns to its menu.
	AllowBack bool

	ScreenshotDir string
}

// sinkSetter is implemented by games that emit entity intents.
type sinkSetter interface {
	SetSink(core.EntitySink)
}

// matchReporter is implemented by games that summarise finished matches.
type matchReporter interface {
	LastMatch() (invaders.MatchSummary, bool)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	clock      *core.FrameClock
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	device     bool
	quitting   bool
	backToMenu bool
	matchSaved bool // Whether the current End has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = DefaultScreenshotDir()
	}
	if s, ok := game.(sinkSetter); ok && opts.Sound != nil {
		s.SetSink(opts.Sound)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		logger:     logger,
		clock:      core.NewFrameClock(time.Now()),
		keys:       NewKeyMapper(opts.HoldWindow),
		inputFrame: core.NewInputFrame(),
		device:     opts.SkipDeviceWait,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	// Any key proves a keyboard is attached.
	m.device = true

	if msg.String() == "ctrl+s" {
		m.saveScreenshot(now)
		return m, nil
	}

	if action, _ := m.keys.MapKey(msg); action == core.ActionBack && m.opts.AllowBack &&
		(m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	if m.keys.Press(msg, now, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.clock.Advance(now)
	m.keys.ApplyHeld(now, &m.inputFrame)
	m.inputFrame.DevicePresent = m.device

	start := time.Now()
	result := m.game.Step(m.clock, m.inputFrame)
	m.opts.Metrics.ObserveTick(time.Since(start))
	m.gameState = result.State

	if result.PhaseChanged {
		m.logger.Info("phase", "from", result.PrevPhase, "to", m.gameState.Phase)
		m.opts.Metrics.PhaseEntered(m.gameState.Phase)
		if !m.gameState.GameOver {
			m.matchSaved = false
		}
	}

	if m.gameState.GameOver && !m.matchSaved {
		m.recordMatch()
		m.matchSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordMatch logs and stores the match that just ended.
func (m *Model) recordMatch() {
	score := m.gameState.Score
	variant := m.game.ID()
	record := storage.MatchRecord{GameID: variant, Won: m.gameState.Won, Score: score}

	if r, ok := m.game.(matchReporter); ok {
		if sum, ok := r.LastMatch(); ok {
			record = storage.MatchRecord{
				GameID:          sum.Variant,
				Movement:        sum.Movement,
				Won:             sum.Won,
				Score:           sum.Score,
				Round:           sum.Round,
				AliensDestroyed: sum.AliensDestroyed,
				ShotsFired:      sum.ShotsFired,
				Duration:        sum.Duration,
			}
		}
	}

	m.logger.Info("match finished",
		"game", record.GameID,
		"won", record.Won,
		"score", record.Score,
		"round", record.Round,
		"duration", record.Duration,
	)
	m.opts.Metrics.MatchFinished(record.GameID, record.Won)

	if m.opts.Store == nil {
		return
	}
	if record.Score > 0 {
		if _, err := m.opts.Store.SaveScore(record.GameID, record.Score); err != nil {
			m.logger.Warn("cannot save score", "error", err)
		}
	}
	if _, err := m.opts.Store.SaveMatch(record); err != nil {
		m.logger.Warn("cannot save match", "error", err)
	}
}

// saveScreenshot writes the current screen to the screenshot directory.
func (m *Model) saveScreenshot(now time.Time) {
	m.game.Render(m.screen)
	path, err := SaveScreenshot(m.screen, m.opts.ScreenshotDir, m.game.ID(), now)
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the latest tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}

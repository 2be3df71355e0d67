// invaders is a terminal arcade shooter: clear the descending swarm before
// it reaches your defense line.
//
// Usage:
//
//	invaders list               - List the swarm variants
//	invaders play [variant]     - Play a variant (default from config)
//	invaders menu               - Pick a variant interactively
//	invaders serve              - Start the SSH server for remote play
//	invaders scores [variant]   - Show high scores and match history
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible effects
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Load a YAML or TOML config file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--movement <kind>     - state_machine or curve
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var (
	// Global flags
	flagFPS            int
	flagSeed           int64
	flagDBPath         string
	flagConfig         string
	flagDifficulty     string
	flagMovement       string
	flagLogFile        string
	flagLogLevel       string
	flagSkipDeviceWait bool
	flagSound          bool
	flagHoldWindow     time.Duration

	// gameCfg is the validated configuration installed at startup.
	gameCfg config.InvadersConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - shoot down the swarm in your terminal",
	Long: `Invaders is a terminal arcade shooter. A swarm sweeps across the field,
dropping one row at every edge. Shoot it down before it reaches your line.

Available commands:
  list     - Show the swarm variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores and match history

Examples:
  invaders play
  invaders play invaders_curve --difficulty hard
  invaders menu
  invaders serve --ssh :2222 --metrics 127.0.0.1:9090
  invaders scores invaders`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagMovement, "movement", "", "Swarm movement: state_machine or curve")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard while playing)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.BoolVar(&flagSkipDeviceWait, "skip-device-wait", false, "Treat the keyboard as connected from the start")
	pf.BoolVar(&flagSound, "sound", false, "Play generated sound effects")
	pf.DurationVar(&flagHoldWindow, "hold-window", 0, "How long a steering key counts as held (default from config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup loads and validates the game configuration once for every command.
// An invalid configuration stops the program here.
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig(flagConfig, flagDifficulty, flagMovement)
	if err != nil {
		return err
	}
	gameCfg = cfg
	invaders.SetConfig(cfg)
	return nil
}

func loadGameConfig(path, difficulty, movement string) (config.InvadersConfig, error) {
	cfg, err := config.LoadInvaders(path)
	if err != nil {
		return cfg, err
	}

	if difficulty != "" {
		preset := config.ParsePreset(difficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
		}
		config.ApplyInvadersPreset(&cfg, preset)
	}
	if movement != "" {
		cfg.Aliens.Movement = movement
	}

	if err := invaders.CheckConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// defaultVariant picks the registered variant matching the configured movement.
func defaultVariant(cfg config.InvadersConfig) string {
	if info, ok := registry.ForMovement(cfg.Aliens.Movement); ok {
		return info.ID
	}
	return invaders.IDStateMachine
}

// newLogger builds the structured logger. Interactive play must not write to
// the terminal, so an empty path discards unless fallback is set.
func newLogger(path string, fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// holdWindow resolves the steering hold window from the flag or config.
func holdWindow() time.Duration {
	if flagHoldWindow > 0 {
		return flagHoldWindow
	}
	return time.Duration(gameCfg.Input.HoldWindow * float64(time.Second))
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

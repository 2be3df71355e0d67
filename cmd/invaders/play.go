package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a swarm variant",
	Long: `Start playing the given variant. Without an argument the variant follows
the configured movement (--movement or aliens.movement).

Controls:
  Left/Right, A/D  - Steer
  Space, Enter, X  - Fire
  P                - Pause
  R                - Replay from the end screen
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Swarm speeds up each round, loss line lowered
  normal - Swarm speeds up each round
  hard   - Starts faster, shorter splash
  fixed  - Swarm speed never changes

Examples:
  invaders play
  invaders play invaders_curve
  invaders play --difficulty hard --sound
  invaders play --config ./my-invaders.toml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultVariant(gameCfg)
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile, nil, "invaders")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts, closeSound := sessionOptions(store, logger)
	defer closeSound()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if _, err := tui.Run(game, runtimeConfig(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// openStore opens the score database. The game still runs without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// sessionOptions assembles the options for a local game, starting the
// speaker when --sound is set.
func sessionOptions(store *storage.Store, logger *log.Logger) (tui.Options, func()) {
	opts := tui.Options{
		Store:          store,
		Logger:         logger,
		SkipDeviceWait: flagSkipDeviceWait,
		HoldWindow:     holdWindow(),
	}
	if !flagSound {
		return opts, func() {}
	}

	player := audio.NewTonePlayer(gameCfg.Sounds)
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return opts, func() {}
	}
	opts.Sound = player
	return opts, player.Close
}

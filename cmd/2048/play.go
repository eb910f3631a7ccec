package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagConfig  string
	flagSize    int
	flagTarget  int
	flagEndless bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on the local terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/hjkl/wasd - Slide tiles
  P/Esc            - Pause
  R                - Restart
  Q/Ctrl+C         - Quit

Examples:
  2048 play
  2048 play --size 5
  2048 play --target 4096
  2048 play --endless
  2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagSize, "size", 0, fmt.Sprintf("Board side length (%d-%d, overrides config)", config.MinBoardSize, config.MaxBoardSize))
	playCmd.Flags().IntVar(&flagTarget, "target", 0, "Win tile value (overrides config)")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play without a win tile")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagSize != 0 {
		if flagSize < config.MinBoardSize || flagSize > config.MaxBoardSize {
			return fmt.Errorf("board size %d out of range %d-%d", flagSize, config.MinBoardSize, config.MaxBoardSize)
		}
		cfg.Board.Size = flagSize
	}
	if flagTarget != 0 {
		cfg.Tiles.Target = flagTarget
	}
	if flagEndless {
		cfg.Tiles.Target = 0
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "2048"})

	// Open score storage; the game still works without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	var scoreStore game.ScoreStore
	if store != nil {
		scoreStore = storage.NewSessionStore(store, cfg.Board.Size, logger)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := game.NewSession(game.Options{
		Size:            cfg.Board.Size,
		Target:          cfg.Tiles.Target,
		FourProbability: cfg.Tiles.FourProbability,
		InitialSpawns:   cfg.Tiles.InitialSpawns,
		Seed:            seed,
		Store:           scoreStore,
	})
	if err != nil {
		if store != nil {
			store.Close()
		}
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(session, store, width, height)

	if store != nil {
		store.Close()
	}

	return runErr
}

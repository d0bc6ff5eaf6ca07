package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of snake in this terminal.

Controls:
  Arrows/WASD/HJKL - Steer
  Enter/Space      - Start
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 300ms per step
  normal - 200ms per step
  hard   - 120ms per step
  insane - 70ms per step

Examples:
  snake play
  snake play --difficulty hard
  snake play --menu          # Pick the difficulty first
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var flagMenu bool

func init() {
	playCmd.Flags().BoolVarP(&flagMenu, "menu", "m", false, "Pick the difficulty from a menu before playing")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if flagMenu {
		preset, ok, menuErr := tui.RunDifficultySelector(config.DifficultyPreset(flagDifficulty), width, height)
		if menuErr != nil {
			return menuErr
		}
		if !ok {
			return nil
		}
		if err := config.ApplyPreset(&cfg, preset); err != nil {
			return err
		}
		logger.Debug("difficulty selected", "preset", preset, "step", cfg.Timing.Step())
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage, the game still works
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	gameLogger, closeLog, err := openGameLog()
	if err != nil {
		logger.Warn("could not open debug log", "error", err)
	}
	defer closeLog()

	runErr := tui.Run(cfg, store, tui.Options{
		Seed:   flagSeed,
		Width:  width,
		Height: height,
		Logger: gameLogger,
	})
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// openGameLog returns the logger used while the alt screen is active.
// Without --debug it is nil and logs are discarded.
func openGameLog() (*log.Logger, func(), error) {
	noop := func() {}
	if !flagDebug {
		return nil, noop, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, noop, err
	}
	path := filepath.Join(home, ".snake", "snake.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, noop, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, noop, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           log.DebugLevel,
	})
	logger.Info("debug log enabled", "path", path)
	return l, func() { f.Close() }, nil
}

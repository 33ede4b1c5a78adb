package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reversi/internal/config"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi"
	"github.com/vovakirdan/tui-reversi/internal/platform/tui"
	"github.com/vovakirdan/tui-reversi/internal/registry"
)

var flagMode string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Reversi. Black moves first.

Controls:
  Arrows/HJKL  - Move cursor
  Enter/Space  - Place a disc (or pass when you have no move)
  Mouse click  - Place a disc on the clicked cell
  U/Backspace  - Undo
  M            - Switch between friend and CPU play
  R            - New game
  Ctrl+S       - Save a text screenshot
  Esc/Q        - Quit

The mode defaults to the config's "mode" key, then to friend.

Examples:
  reversi play
  reversi play --mode cpu
  reversi play --config ./my-reversi.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Opponent: friend or cpu (default from config)")
}

// resolveMode picks the mode: flag, then config file, then friend.
func resolveMode(flag string) (reversi.Mode, error) {
	if flag != "" {
		return reversi.ParseMode(flag)
	}
	cfg, err := config.LoadReversi(flagConfig)
	if err != nil {
		return "", err
	}
	return reversi.ParseMode(cfg.Mode)
}

func runPlay(_ *cobra.Command, _ []string) error {
	mode, err := resolveMode(flagMode)
	if err != nil {
		return err
	}

	game, err := registry.Create(reversi.GameID(mode))
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

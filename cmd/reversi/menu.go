package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reversi/internal/platform/tui"
	"github.com/vovakirdan/tui-reversi/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick an opponent from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to choose between a friend and the CPU, Enter to
play, Tab to see finished games. Esc in a game returns to the menu.

Examples:
  reversi menu
  reversi menu --db ./results.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsResults:
			goBack, err := tui.RunResults(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case res.GameID != "":
			game, err := registry.Create(res.GameID)
			if err != nil {
				stderr.Error("cannot create game", "game", res.GameID, "error", err)
				continue
			}
			goBack, err := tui.Run(game, store, cfg, logger)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
		}
	}
}

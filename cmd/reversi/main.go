// reversi is a terminal Reversi on a 6x6 board, for two players sharing a
// keyboard or one player against the computer.
//
// Usage:
//
//	reversi play [--mode cpu]  - Play a game
//	reversi menu               - Pick an opponent interactively
//	reversi results            - Show finished games and totals
//	reversi serve              - Start SSH and/or HTTP servers
//	reversi list               - List game variants
//	reversi config             - Show the active configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--db <path>        - Set results database (default: XDG data dir)
//	--config <path>    - Use a custom reversi.yaml
//	--log-file <path>  - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-reversi/internal/core"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi"
	"github.com/vovakirdan/tui-reversi/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagConfig  string
	flagLogFile string

	// logger receives debug output from running games; it discards unless
	// --log-file is set because the alt screen owns stdout.
	logger  = log.New(io.Discard)
	logFile *os.File

	// stderr carries CLI warnings.
	stderr = log.NewWithOptions(os.Stderr, log.Options{Prefix: "reversi"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reversi",
	Short: "Reversi - 6x6 disc flipping in your terminal",
	Long: `Reversi is a terminal version of the disc-flipping board game on a
6x6 board. Play against a friend on the same keyboard or against the CPU.

Available commands:
  play     - Play a game directly
  menu     - Interactive opponent picker
  results  - View finished games
  serve    - Start SSH server for remote play and the results API
  list     - Show game variants
  config   - Show the active configuration

Examples:
  reversi play
  reversi play --mode cpu
  reversi menu
  reversi serve --ssh :2222 --http :8080
  reversi results --mode cpu`,
	SilenceErrors:      true,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom reversi.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies global flags before any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	reversi.SetConfigPath(flagConfig)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "reversi",
		})
	}
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}

// openStore opens the results database. Failures are warnings: games still
// work without it.
func openStore() *storage.Store {
	path := flagDBPath
	if path == "" {
		p, err := storage.DefaultPath()
		if err != nil {
			stderr.Warn("could not resolve results database", "error", err)
			return nil
		}
		path = p
	}

	store, err := storage.Open(path)
	if err != nil {
		stderr.Warn("could not open results database", "path", path, "error", err)
		return nil
	}
	logger.Debug("results database open", "path", path)
	return store
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

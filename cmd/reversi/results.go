package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reversi/internal/games/reversi"
	"github.com/vovakirdan/tui-reversi/internal/storage"
)

var (
	flagResultsMode  string
	flagResultsLimit int
	flagResultsClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show finished games",
	Long: `Display the most recent finished games and win totals.

Examples:
  reversi results
  reversi results --mode cpu --limit 5
  reversi results --clear --mode friend`,
	Args: cobra.NoArgs,
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().StringVar(&flagResultsMode, "mode", "", "Only show friend or cpu games")
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 10, "Number of games to list")
	resultsCmd.Flags().BoolVar(&flagResultsClear, "clear", false, "Delete stored results (respects --mode)")
}

func runResults(cmd *cobra.Command, _ []string) error {
	mode := ""
	if flagResultsMode != "" {
		m, err := reversi.ParseMode(flagResultsMode)
		if err != nil {
			return err
		}
		mode = string(m)
	}

	store := openStore()
	if store == nil {
		return errors.New("results database is unavailable")
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagResultsClear {
		if err := store.ClearResults(mode); err != nil {
			return err
		}
		fmt.Fprintln(out, "Results cleared.")
		return nil
	}

	results, err := store.RecentResults(mode, flagResultsLimit)
	if err != nil {
		return err
	}
	stats, err := store.GetStats(mode)
	if err != nil {
		return err
	}

	title := "Results"
	if mode != "" {
		title = fmt.Sprintf("Results - %s", reversi.Mode(mode).Label())
	}
	fmt.Fprintln(out, title)
	fmt.Fprintln(out)

	if len(results) == 0 {
		fmt.Fprintln(out, "No finished games yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'reversi play' to record the first one!")
		return nil
	}

	printResults(cmd, results)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Games: %d  Black wins: %d  White wins: %d  Draws: %d  Avg moves: %.1f\n",
		stats.Games, stats.BlackWins, stats.WhiteWins, stats.Draws, stats.AvgMoves)
	return nil
}

func printResults(cmd *cobra.Command, results []storage.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-16s  %-6s  %5s  %5s  %-6s  %5s  %s\n", "Date", "Mode", "Black", "White", "Winner", "Moves", "Match")
	fmt.Fprintf(out, "  %-16s  %-6s  %5s  %5s  %-6s  %5s  %s\n", "----", "----", "-----", "-----", "------", "-----", "-----")
	for _, r := range results {
		fmt.Fprintf(out, "  %-16s  %-6s  %5d  %5d  %-6s  %5d  %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Mode, r.Black, r.White, r.Winner, r.Moves, r.MatchID)
	}
}

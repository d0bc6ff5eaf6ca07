package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores recorded on this machine.

Examples:
  snake scores
  snake scores --limit 25
  snake scores -i        # Interactive scoreboard
  snake scores --clear   # Delete all results`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of results to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		logger.Info("scores cleared", "db", flagDBPath)
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	results, err := store.TopScores(flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Snake")
	fmt.Fprintln(out)

	if len(results) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'snake play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-6s  %-10s  %s\n", "Rank", "Player", "Score", "Length", "Reason", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-6s  %-10s  %s\n", "----", "------", "-----", "------", "------", "----")
	for i, r := range results {
		fmt.Fprintf(out, "  %-4d  %-12s  %-6d  %-6d  %-10s  %s\n",
			i+1, r.Player, r.Score, r.Length, r.EndReason, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Games: %d  Avg: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

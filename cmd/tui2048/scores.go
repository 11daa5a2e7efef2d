package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := storage.Open(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("open scores database: %w", err)
		}
		defer store.Close()

		if flagScoresClear {
			if err := store.ClearScores(); err != nil {
				return fmt.Errorf("clear scores: %w", err)
			}
			fmt.Println("Scores cleared.")
			return nil
		}

		if flagScoresInteractive {
			width, height := 80, 24
			if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				width, height = w, h
			}
			return tui.RunScoreboard(store, width, height)
		}

		entries, err := store.TopScores(flagScoresLimit)
		if err != nil {
			return fmt.Errorf("load scores: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No scores recorded yet. Play a game first!")
			return nil
		}

		stats, err := store.GetStats()
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		fmt.Printf("Top %d scores:\n\n", len(entries))
		fmt.Printf("  %-4s %-8s %-9s %-7s %s\n", "Rank", "Score", "Max Tile", "Result", "Date")
		for i, e := range entries {
			result := "lost"
			if e.Won {
				result = "won"
			}
			fmt.Printf("  %-4d %-8d %-9d %-7s %s\n",
				i+1, e.Score, e.MaxTile, result, e.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Printf("\n%d games played, %d won, best tile %d, average score %.0f\n",
			stats.Games, stats.Wins, stats.BestTile, stats.AvgScore)
		return nil
	},
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresInteractive, "interactive", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

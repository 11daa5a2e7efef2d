// tui2048 is a terminal 2048 game.
//
// Usage:
//
//	tui2048 play    - Play in the current terminal
//	tui2048 serve   - Start an SSH server for remote play
//	tui2048 scores  - Show the high score table
//
// Global flags:
//
//	--fps <rate>     - Tick rate (default from config, 60)
//	--seed <value>   - RNG seed for a reproducible game (0 = time-based)
//	--db <path>      - Scores database path (default ~/.tui2048/scores.db)
//	--config <path>  - Custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui2048",
	Short: "2048 in your terminal",
	Long: `tui2048 is the sliding-tile puzzle 2048, played in the terminal.

Slide tiles with the arrow keys (or WASD/HJKL); equal tiles merge into
their doubled value, and a new tile appears after every move. Reach
2048 to win; run out of moves and you lose.

Examples:
  tui2048 play
  tui2048 play --seed 42
  tui2048 serve --ssh :2222
  tui2048 scores --interactive`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (empty = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Database.Path = flagDBPath
	}
	return cfg, nil
}

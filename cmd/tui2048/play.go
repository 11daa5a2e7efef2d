package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 in the current terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		runtimeCfg := core.DefaultConfig()
		runtimeCfg.TickRate = cfg.TickRate
		runtimeCfg.Seed = flagSeed
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			runtimeCfg.ScreenW = w
			runtimeCfg.ScreenH = h
		}

		store, err := storage.Open(cfg.Database.Path)
		if err != nil {
			log.Warn("scores database unavailable, playing without persistence", "error", err)
			store = nil
		} else {
			defer store.Close()
		}

		final, err := tui.Run(engine.New(), store, runtimeCfg)
		if err != nil {
			return fmt.Errorf("run game: %w", err)
		}

		if final.GameOver {
			result := "LOSE"
			if final.Won {
				result = "WIN"
			}
			fmt.Printf("You %s, with a score of %d.\n", result, final.Score)
		} else if final.Score > 0 {
			fmt.Printf("Final score: %d\n", final.Score)
		}
		return nil
	},
}

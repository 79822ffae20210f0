package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/borno/internal/core"
	"github.com/vovakirdan/borno/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window <stage>",
	Short: "Play a stage in a desktop window",
	Long: `Play a built-in stage or a stage file in a desktop window.

Controls:
  Arrows/WASD      - Move
  Shift/X          - Focus (slow movement, split shot)
  Z/Space          - Fire
  P/Esc            - Pause
  R                - Restart (after the run ends)
  Q                - Quit

Examples:
  borno window borno
  borno window ./stages/mine.yaml --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the stage file when it changes")
	windowCmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with your runs (default: $USER)")
}

func runWindow(_ *cobra.Command, args []string) {
	game, err := loadGame(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	v := game.View()
	cfg := core.RuntimeConfig{
		ScreenW:  int(v.Width()),
		ScreenH:  int(v.Height()),
		TickRate: flagFPS,
	}

	store := openStore()
	opts := window.Options{Store: store, Player: playerName(), Logger: logger}
	if flagWatch {
		watcher, events := watchStage(args[0])
		if watcher != nil {
			defer watcher.Close()
		}
		opts.Reloads = events
	}

	runErr := window.Run(game, cfg, opts)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

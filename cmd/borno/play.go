package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/borno/internal/core"
	"github.com/vovakirdan/borno/internal/platform/tui"
)

var (
	flagWatch  bool
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play <stage>",
	Short: "Play a stage in the terminal",
	Long: `Play a built-in stage or a stage file in the terminal.

Terminals do not report key releases, so a key counts as held while it
keeps repeating. Hold shift with the arrows, or hold X, to focus.

Controls:
  Arrows/WASD      - Move
  Shift+Arrows/X   - Focus (slow movement, split shot)
  Z/Space          - Fire
  P/Esc            - Pause
  R                - Restart (after the run ends)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  borno play borno
  borno play ./stages/mine.yaml --watch
  borno play dummy --config ./tuning.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the stage file when it changes")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with your runs (default: $USER)")
}

// playerName returns the --player flag or the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

func runPlay(_ *cobra.Command, args []string) {
	game, err := loadGame(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	store := openStore()
	opts := tui.Options{Store: store, Player: playerName()}
	if flagWatch {
		watcher, events := watchStage(args[0])
		if watcher != nil {
			defer watcher.Close()
		}
		opts.Reloads = events
	}

	runErr := tui.Run(game, cfg, opts)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/borno/internal/config"
	"github.com/vovakirdan/borno/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeStage  string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the borno SSH server",
	Long: `Start an SSH server where every connection plays one built-in stage.

Runs are stored with the SSH user name, so all users share one board.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.borno/host_key

Examples:
  borno serve                           # Listen on :23234 with auto-generated key
  borno serve --ssh :2222               # Listen on port 2222
  borno serve --stage dummy --fps 30    # Serve the training stage at 30 fps
  borno serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeStage, "stage", "borno", "Built-in stage every session plays")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.StageID = flagServeStage
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	if err := checkServeStage(cfg.StageID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting borno SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// checkServeStage accepts only registered stages: every session builds its
// game from the registry, which knows nothing about files.
func checkServeStage(ref string) error {
	if config.IsStageFile(ref) {
		return fmt.Errorf("serve plays built-in stages only, got file %s", ref)
	}
	_, err := loadGame(ref)
	return err
}

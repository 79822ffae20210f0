// borno is a bullet-hell stage runner for the terminal and the desktop.
//
// Usage:
//
//	borno list                 - List built-in stages
//	borno play <stage>         - Play a stage in the terminal
//	borno window <stage>       - Play a stage in a desktop window
//	borno serve                - Serve a stage over SSH
//	borno scores [stage]       - Show stored runs
//	borno check <stage.yaml>   - Validate stage scripts
//
// A stage is a built-in ID or a path to a stage YAML file.
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--db <path>      - Set database path (default: ~/.borno/scores.db)
//	--config <path>  - Load tuning from a YAML file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagConfig string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "borno",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "borno",
	Short: "borno - dodge bullets in your terminal or a window",
	Long: `borno runs scripted bullet-hell stages: enemies fly along fixed paths
and fire rings and aimed shots while you weave through them.

Available commands:
  list     - Show built-in stages
  play     - Play a stage in the terminal
  window   - Play a stage in a desktop window
  serve    - Start SSH server for remote play
  scores   - View stored runs
  check    - Validate stage scripts

Examples:
  borno list
  borno play borno
  borno play ./my-stage.yaml --watch
  borno window dummy --fps 120
  borno serve --ssh :2222
  borno scores borno`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		applyTuningPath()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.borno/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
}

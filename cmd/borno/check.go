package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/borno/internal/config"
	"github.com/vovakirdan/borno/internal/games/danmaku"
)

var checkCmd = &cobra.Command{
	Use:   "check <stage>...",
	Short: "Validate stage scripts",
	Long: `Parse and validate stage files or built-in stages against the tuning,
then report the number of waves of each. Validation errors carry a code
such as UNKNOWN_PATTERN or NEGATIVE_DELAY.

Examples:
  borno check ./stages/mine.yaml
  borno check borno dummy --config ./tuning.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	tuning, err := config.LoadTuning(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, ref := range args {
		if err := checkStage(ref, tuning); err != nil {
			failed++
			var verr config.ValidationError
			if errors.As(err, &verr) {
				fmt.Printf("FAIL  %s  [%s] %s\n", ref, verr.Code, verr.Message)
			} else {
				fmt.Printf("FAIL  %s  %v\n", ref, err)
			}
		}
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d stages failed\n", failed, len(args))
		os.Exit(1)
	}
}

// checkStage loads one stage and builds its spawn queue.
func checkStage(ref string, tuning config.Tuning) error {
	stage, err := config.LoadStage(ref)
	if err != nil {
		return err
	}
	entries, err := danmaku.BuildSpawnQueue(stage, tuning)
	if err != nil {
		return err
	}
	fmt.Printf("OK    %s  %q, %d waves\n", ref, stage.Name, len(entries))
	return nil
}

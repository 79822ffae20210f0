package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/borno/internal/platform/tui"
	"github.com/vovakirdan/borno/internal/registry"
	"github.com/vovakirdan/borno/internal/storage"
)

var (
	flagScoresTUI    bool
	flagScoresRecent bool
	flagScoresLimit  int
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [stage]",
	Short: "Show stored runs",
	Long: `Display the best runs for a stage, or a summary of every stage.

Examples:
  borno scores               # Summary of all stages
  borno scores borno         # Top 10 runs of a stage
  borno scores borno --recent
  borno scores --tui         # Interactive board
  borno scores dummy --clear # Forget a stage's runs`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs interactively")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the newest runs instead of the best")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the stage's stored runs")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stageID := ""
	if len(args) == 1 {
		stageID = args[0]
	}

	switch {
	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.RunScoreboard(store, stageID, width, height)
	case flagScoresClear:
		if stageID == "" {
			err = fmt.Errorf("--clear needs a stage")
			break
		}
		if err = store.ClearScores(stageID); err == nil {
			fmt.Printf("Cleared runs of %s\n", stageID)
		}
	case stageID == "":
		err = printSummary(store)
	default:
		err = printRuns(store, stageID)
	}

	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printSummary prints aggregated statistics for every stage with runs,
// built-in stages first.
func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for _, info := range registry.List() {
		if _, ok := all[info.ID]; ok {
			ids = append(ids, info.ID)
			delete(all, info.ID)
		}
	}
	rest := make([]string, 0, len(all))
	for id := range all {
		rest = append(rest, id)
	}
	sort.Strings(rest)
	ids = append(ids, rest...)

	fmt.Printf("  %-12s  %5s  %8s  %8s  %6s  %-7s  %s\n", "Stage", "Runs", "Best", "Average", "Clears", "Fastest", "Last played")
	fmt.Printf("  %-12s  %5s  %8s  %8s  %6s  %-7s  %s\n", "-----", "----", "----", "-------", "------", "-------", "-----------")
	for _, id := range ids {
		st, err := store.GetGameStats(id)
		if err != nil {
			return err
		}
		fmt.Printf("  %-12s  %5d  %8d  %8.0f  %6d  %-7s  %s\n",
			id, st.GamesCount, st.HighScore, st.AvgScore, st.Clears, fastestClear(st), st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// fastestClear formats a stage's best clear time, or a dash if it was never cleared.
func fastestClear(st *storage.GameStats) string {
	if st.Clears == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fs", st.BestClear)
}

// printRuns lists the best or newest runs of one stage.
func printRuns(store *storage.Store, stageID string) error {
	var runs []storage.RunRecord
	var err error
	title := "Best runs"
	if flagScoresRecent {
		title = "Recent runs"
		runs, err = store.RecentRuns(stageID, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(stageID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n\n", title, stageID)
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'borno play %s' to set the first record!\n", stageID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-4s  %-7s  %-5s  %-10s  %s\n",
		"Rank", "Score", "Kills", "Hits", "Time", "Clear", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-4s  %-7s  %-5s  %-10s  %s\n",
		"----", "-----", "-----", "----", "----", "-----", "------", "----")
	for i, r := range runs {
		cleared := ""
		if r.Cleared {
			cleared = "yes"
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-4d  %-7s  %-5s  %-10s  %s\n",
			i+1, r.Score, r.Kills, r.Hits, fmt.Sprintf("%.1fs", r.Elapsed), cleared, r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	st, err := store.GetGameStats(stageID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Clears: %d  Fastest: %s\n",
		st.GamesCount, st.HighScore, st.AvgScore, st.Clears, fastestClear(st))
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [pack]",
	Short: "Show high scores",
	Long: `Display the best runs for a level pack, or a summary of every pack
when no pack is given.

Examples:
  platformer scores
  platformer scores classic
  platformer scores caverns --limit 20
  platformer scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs of the pack")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(store)
	}

	packID := args[0]
	info, ok := registry.Info(packID)
	if !ok {
		// Runs from --levels directories are stored under the directory name.
		info = registry.PackInfo{ID: packID, Title: packID}
	}

	if flagScoresClear {
		if err := store.ClearScores(packID); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s.\n", info.Title)
		return nil
	}

	runs, err := store.TopScores(packID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play %s' to set the first high score!\n", packID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-12s  %s\n", "Rank", "Score", "Level", "Result", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-12s  %s\n", "----", "-----", "-----", "------", "------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %-6s  %-12s  %s\n",
			i+1, r.Score, r.LevelReached, r.Outcome, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.PackStats(packID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Wins: %d  Avg: %.0f\n", stats.HighScore, stats.Runs, stats.Wins, stats.AvgScore)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.AllPackStats()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-12s  %-5s  %-5s  %-8s  %s\n", "Pack", "Runs", "Wins", "Best", "Last played")
	fmt.Printf("  %-12s  %-5s  %-5s  %-8s  %s\n", "----", "----", "----", "----", "-----------")
	for _, p := range registry.List() {
		if s, ok := all[p.ID]; ok {
			printStatsRow(s)
			delete(all, p.ID)
		}
	}
	// Directory packs played with --levels
	for _, s := range all {
		printStatsRow(s)
	}

	recent, err := store.RecentRuns(5)
	if err != nil || len(recent) == 0 {
		return err
	}
	fmt.Println()
	fmt.Println("Recent runs:")
	for _, r := range recent {
		fmt.Printf("  %-12s  %-8d  level %-3d  %-6s  %s\n", r.PackID, r.Score, r.LevelReached, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printStatsRow(s *storage.PackStats) {
	fmt.Printf("  %-12s  %-5d  %-5d  %-8d  %s\n", s.PackID, s.Runs, s.Wins, s.HighScore, s.LastPlayed.Format("2006-01-02 15:04"))
}

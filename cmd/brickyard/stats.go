package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickyard/internal/storage"
)

var (
	flagClear   bool
	flagSession string
)

var statsCmd = &cobra.Command{
	Use:   "stats [level]",
	Short: "Show best solves",
	Long: `Without a level, summarize solves for every level.
With a level, list its 10 best solves (fewest moves first).

Examples:
  brickyard stats
  brickyard stats ledge
  brickyard stats ledge --clear
  brickyard stats --session <uuid>`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded solves of the given level")
	statsCmd.Flags().StringVar(&flagSession, "session", "", "List the solves of one play session")
}

func runStats(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open solves database: %w", err)
	}
	defer store.Close()

	if flagSession != "" {
		return printSession(store, flagSession)
	}

	if len(args) == 0 {
		if flagClear {
			return fmt.Errorf("--clear needs a level")
		}
		return printSummary(store)
	}

	levelID := args[0]
	if flagClear {
		if err := store.ClearSolves(levelID); err != nil {
			return err
		}
		fmt.Printf("Cleared solves for %s\n", levelID)
		return nil
	}
	return printBest(store, levelID)
}

func printSummary(store *storage.Store) error {
	stats, err := store.AllLevelStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Run 'brickyard play' to solve your first level!")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %-6s  %-4s  %-6s  %s\n", "Level", "Solves", "Best", "Avg", "Last")
	fmt.Printf("  %-16s  %-6s  %-4s  %-6s  %s\n", "-----", "------", "----", "---", "----")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-16s  %-6d  %-4d  %-6.1f  %s\n",
			id, s.Solves, s.BestMoves, s.AvgMoves, s.LastSolved.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func printBest(store *storage.Store, levelID string) error {
	solves, err := store.BestSolves(levelID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Best Solves - %s\n", levelID)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'brickyard play %s' to set the first one!\n", levelID)
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-8s  %s\n", "Rank", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-5s  %-8s  %s\n", "----", "-----", "----", "----")
	for i, s := range solves {
		fmt.Printf("  %-4d  %-5d  %-8s  %s\n",
			i+1, s.Moves, s.Duration.Round(100*time.Millisecond), s.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func printSession(store *storage.Store, sessionID string) error {
	solves, err := store.SessionSolves(sessionID)
	if err != nil {
		return err
	}
	fmt.Printf("Session %s\n\n", sessionID)
	if len(solves) == 0 {
		fmt.Println("No solves in this session.")
		return nil
	}

	fmt.Printf("  %-16s  %-5s  %-8s  %s\n", "Level", "Moves", "Time", "Date")
	fmt.Printf("  %-16s  %-5s  %-8s  %s\n", "-----", "-----", "----", "----")
	for _, s := range solves {
		fmt.Printf("  %-16s  %-5d  %-8s  %s\n",
			s.LevelID, s.Moves, s.Duration.Round(100*time.Millisecond), s.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

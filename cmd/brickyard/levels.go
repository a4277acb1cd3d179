package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagIDsOnly bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows every level that loads and validates, with its size and difficulty.`,
	RunE:  runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagIDsOnly, "ids", false, "Print level IDs only, one per line")
}

func runLevels(_ *cobra.Command, _ []string) error {
	logger := newLogger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagIDsOnly {
		loader, err := newLoader(cfg, logger)
		if err != nil {
			return err
		}
		ids, err := loader.ListIDs()
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	}

	all, err := loadLevels(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range all {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-10s  %s\n", maxIDLen, "ID", "Size", "Difficulty", "Title")
	fmt.Printf("  %-*s  %-7s  %-10s  %s\n", maxIDLen, "--", "----", "----------", "-----")

	for _, l := range all {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-*s  %-7s  %-10s  %s\n", maxIDLen, l.ID, size, l.Metadata["difficulty"], levelTitle(l))
	}

	fmt.Println()
	fmt.Println("Run 'brickyard play <id>' to play a level.")
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickyard/internal/games/bricks/core"
	"github.com/vovakirdan/brickyard/internal/games/bricks/levels"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <level>",
	Short: "Print how a level's bricks hold together",
	Long: `Print the board, the anchor path of every movable brick and what
pulling each brick up or down would lift.

Path symbols: ^ upward, v downward, X either, o none, # anchor.

Examples:
  brickyard inspect bridge
  brickyard inspect --levels ./my-levels mine`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(_ *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loader, err := newLoader(cfg, logger)
	if err != nil {
		return err
	}
	lvl, err := loader.LoadByID(args[0])
	if err != nil {
		return err
	}
	board, err := lvl.NewBoard()
	if err != nil {
		return err
	}
	picker := core.NewPicker(board)
	graph := picker.Graph()

	fmt.Printf("%s (%s) %dx%d\n\n", levelTitle(lvl), lvl.ID, lvl.Width, lvl.Height)
	printSideBySide(core.RenderASCII(board), core.RenderPaths(board, graph))

	fmt.Println()
	fmt.Printf("  %-6s  %-7s  %-8s  %-8s  %-12s  %s\n", "Brick", "At", "Color", "Path", "Topside", "Underside")
	fmt.Printf("  %-6s  %-7s  %-8s  %-8s  %-12s  %s\n", "-----", "--", "-----", "----", "-------", "---------")
	for _, n := range graph.Nodes() {
		br := board.Bricks[n.Brick]
		fmt.Printf("  %-6s  %-7s  %-8s  %-8s  %-12s  %s\n",
			brickName(lvl, n.Brick), br.Pos, br.Color, n.Path,
			brickList(lvl, n.Topside), brickList(lvl, n.Underside))
	}

	fmt.Println()
	fmt.Println("Detach:")
	for _, id := range board.Movable() {
		dirs := []core.Direction{core.DirUp, core.DirDown}
		if forced := core.DetachDirectionFor(graph.Path(id)); forced != core.DirEither {
			dirs = []core.Direction{forced}
		}
		var parts []string
		for _, dir := range dirs {
			res, err := picker.WhatIfDetach(id, dir)
			if err != nil {
				return err
			}
			if res.OK {
				parts = append(parts, fmt.Sprintf("%s lifts %s", dir, brickList(lvl, res.Bricks)))
			} else {
				parts = append(parts, fmt.Sprintf("%s blocked", dir))
			}
		}
		fmt.Printf("  %-6s  %s\n", brickName(lvl, id), strings.Join(parts, "; "))
	}
	return nil
}

// printSideBySide prints two equally tall text blocks next to each other.
func printSideBySide(left, right string) {
	l := strings.Split(strings.TrimRight(left, "\n"), "\n")
	r := strings.Split(strings.TrimRight(right, "\n"), "\n")
	for i := range l {
		line := "  " + l[i]
		if i < len(r) {
			line += "    " + r[i]
		}
		fmt.Println(line)
	}
}

// brickName prefers the label from the level file.
func brickName(lvl levels.Level, id core.BrickID) string {
	if id >= 0 && int(id) < len(lvl.Bricks) && lvl.Bricks[id].Label != "" {
		return lvl.Bricks[id].Label
	}
	return fmt.Sprintf("#%d", id)
}

func brickList(lvl levels.Level, ids []core.BrickID) string {
	if len(ids) == 0 {
		return "-"
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = brickName(lvl, id)
	}
	return strings.Join(names, ",")
}

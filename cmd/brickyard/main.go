// brickyard is a terminal brick puzzle: lift connected bricks off a wall and
// put them back somewhere that holds.
//
// Usage:
//
//	brickyard levels           - List available levels
//	brickyard play [level]     - Play (opens the level menu without an argument)
//	brickyard inspect <level>  - Print the connection graph of a level
//	brickyard stats [level]    - Show best solves
//	brickyard serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 30)
//	--db <path>       - Set database path (default: ~/.brickyard/solves.db)
//	--config <path>   - Custom bricks.yaml
//	--levels <dir>    - Load levels from a directory instead of the built-in set
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickyard/internal/config"
	"github.com/vovakirdan/brickyard/internal/core"
	"github.com/vovakirdan/brickyard/internal/games/bricks/levels"
	"github.com/vovakirdan/brickyard/internal/platform/tui"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string
	flagVerbose   bool
	flagMono      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickyard",
	Short: "Brickyard - a brick lifting puzzle for your terminal",
	Long: `Brickyard is a puzzle played on a wall of bricks. Pull a brick and
everything hanging off it comes along; put the group back where it touches
exactly one side and fill the goal cells to win.

Available commands:
  levels   - Show all available levels
  play     - Play a level, or pick one from the menu
  inspect  - Print how a level's bricks hold together
  stats    - View best solves
  serve    - Start SSH server for remote play

Examples:
  brickyard levels
  brickyard play
  brickyard play ledge
  brickyard inspect bridge
  brickyard serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagMono {
			tui.SetTheme(tui.MonochromeTheme())
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/solves.db", "Path to solves database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom bricks.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in levels)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagMono, "mono", false, "Monochrome menus")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns the CLI logger. Debug output only with --verbose.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickyard",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig reads bricks.yaml following the usual search order.
func loadConfig() (config.BricksConfig, error) {
	cfg, err := config.LoadBricks(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// levelSource picks the directory named by --levels, then the config, then
// the built-in set.
func levelSource(cfg config.BricksConfig) (fs.FS, string, error) {
	dir := flagLevelsDir
	if dir == "" {
		dir = cfg.Levels.Dir
	}
	if dir == "" {
		return levels.Builtin(), "built-in", nil
	}
	dir, err := config.ExpandHome(dir)
	if err != nil {
		return nil, "", err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, "", fmt.Errorf("levels dir: %w", err)
	}
	if !info.IsDir() {
		return nil, "", fmt.Errorf("levels dir: %s is not a directory", dir)
	}
	return os.DirFS(dir), dir, nil
}

// newLoader builds a level loader over the selected source.
func newLoader(cfg config.BricksConfig, logger *log.Logger) (*levels.Loader, error) {
	fsys, name, err := levelSource(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("loading levels", "from", name)
	loader := levels.NewLoader(fsys)
	loader.Logger = logger
	return loader, nil
}

// loadLevels returns every valid level, sorted by ID.
func loadLevels(cfg config.BricksConfig, logger *log.Logger) ([]levels.Level, error) {
	loader, err := newLoader(cfg, logger)
	if err != nil {
		return nil, err
	}
	all, err := loader.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no levels found")
	}
	return all, nil
}

// levelIndex finds a level by ID.
func levelIndex(all []levels.Level, id string) (int, bool) {
	for i, l := range all {
		if l.ID == id {
			return i, true
		}
	}
	return -1, false
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// levelTitle returns the display name of a level.
func levelTitle(l levels.Level) string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

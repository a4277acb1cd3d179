package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickyard/internal/config"
	"github.com/vovakirdan/brickyard/internal/core"
	"github.com/vovakirdan/brickyard/internal/platform/tui"
	"github.com/vovakirdan/brickyard/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing. Without a level the level menu opens first.

Controls:
  Arrows/WASD    - Move the cursor
  Space/Click    - Pick up, then place
  Up/Down        - While dragging, pull up or down
  Esc/Right-click - Put the held bricks back
  R              - Restart level
  N              - Next level (after solving)
  B              - Back to the level menu
  Q/Ctrl+C       - Quit

Examples:
  brickyard play
  brickyard play ledge
  brickyard play --levels ./my-levels tower`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	all, err := loadLevels(cfg, logger)
	if err != nil {
		return err
	}

	start := -1
	if len(args) == 1 {
		idx, ok := levelIndex(all, args[0])
		if !ok {
			return fmt.Errorf("unknown level %q (run 'brickyard levels' to see available levels)", args[0])
		}
		start = idx
	}

	// Open solve storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open solves database", "error", err)
		// Continue without storage - the game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// The alt screen owns the terminal; session logs go to a file.
	sessionLog, closeLog := fileLogger(logger)
	defer closeLog()

	sessionID := storage.NewSessionID()
	sessionLog = sessionLog.With("session", sessionID)

	width, height := terminalSize()
	err = tui.RunSession(tui.SessionOptions{
		Levels:    all,
		Bricks:    cfg,
		Store:     store,
		Logger:    sessionLog,
		SessionID: sessionID,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		StartLevel: start,
	})
	if err != nil {
		return err
	}
	if store != nil {
		fmt.Printf("Session %s (see 'brickyard stats --session %s')\n", sessionID, sessionID)
	}
	return nil
}

// fileLogger opens ~/.brickyard/brickyard.log for the duration of a session.
// On failure logging is dropped.
func fileLogger(fallback *log.Logger) (*log.Logger, func()) {
	path, err := config.ExpandHome(filepath.Join("~", config.AppDir, "brickyard.log"))
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	var f *os.File
	if err == nil {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	}
	if err != nil {
		fallback.Warn("session log disabled", "error", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickyard",
		Level:           fallback.GetLevel(),
	})
	return logger, func() { f.Close() }
}

// Package levels provides level loading functionality for Brickyard.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickyard/internal/games/bricks/core"
	"github.com/vovakirdan/brickyard/internal/games/bricks/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the levels shipped with the binary.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: builtin directory missing: %v", err))
	}
	return sub
}

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Bricks   []formats.BrickDef
	Actors   []formats.ActorDef
	Goal     []core.Coord
	Metadata map[string]string
	FilePath string
}

// NewBoard builds a fresh board from the level. Brick IDs follow the order
// of the level file.
func (l *Level) NewBoard() (*core.Board, error) {
	b := core.NewBoard(l.Width, l.Height)
	for i, def := range l.Bricks {
		if _, err := b.AddBrick(def.Pos, def.Width, def.Kind, def.Color); err != nil {
			return nil, fmt.Errorf("level %s: brick %d: %w", l.ID, i, err)
		}
	}
	for _, a := range l.Actors {
		if _, err := b.AddActor(a.Name, a.Pos, a.Width, a.Height); err != nil {
			return nil, fmt.Errorf("level %s: %w", l.ID, err)
		}
	}
	return b, nil
}

// Brick returns the ID of the brick with the given label.
func (l *Level) Brick(label string) (core.BrickID, bool) {
	for i, def := range l.Bricks {
		if def.Label == label {
			return core.BrickID(i), true
		}
	}
	return core.NoBrick, false
}

// Loader handles loading levels from a file system.
type Loader struct {
	FS     fs.FS
	Logger *log.Logger
}

// NewLoader creates a new level loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{FS: fsys, Logger: log.Default()}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are logged and skipped.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			l.logger().Warn("skipping level", "file", p, "error", err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking levels: %w", err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	level := Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Width:    parsed.Width,
		Height:   parsed.Height,
		Bricks:   parsed.Bricks,
		Actors:   parsed.Actors,
		Goal:     parsed.Goal,
		Metadata: parsed.Metadata,
		FilePath: p,
	}
	if level.ID == "" {
		level.ID = strings.TrimSuffix(path.Base(p), ext)
	}
	if err := Validate(level); err != nil {
		return Level{}, fmt.Errorf("validating file %s: %w", p, err)
	}
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func (l *Loader) logger() *log.Logger {
	if l.Logger == nil {
		return log.Default()
	}
	return l.Logger
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

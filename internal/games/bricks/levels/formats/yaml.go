// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/brickyard/internal/games/bricks/core"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size"`
	Bricks   []YAMLBrick       `yaml:"bricks"`
	Actors   []YAMLActor       `yaml:"actors,omitempty"`
	Goal     []YAMLCell        `yaml:"goal,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLBrick represents a single brick. Label is optional and only used to
// refer to the brick from tests and tooling.
type YAMLBrick struct {
	Label string `yaml:"id,omitempty"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	W     int    `yaml:"w"`
	Kind  string `yaml:"kind,omitempty"`
	Color string `yaml:"color,omitempty"`
}

// YAMLActor represents a non-brick actor standing in the level.
type YAMLActor struct {
	Name string `yaml:"name"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	W    int    `yaml:"w,omitempty"`
	H    int    `yaml:"h,omitempty"`
}

// YAMLCell is a bare cell coordinate.
type YAMLCell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// BrickDef is a parsed brick definition.
type BrickDef struct {
	Label string
	Pos   core.Coord
	Width int
	Kind  core.Kind
	Color core.Color
}

// ActorDef is a parsed actor definition.
type ActorDef struct {
	Name   string
	Pos    core.Coord
	Width  int
	Height int
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Bricks   []BrickDef
	Actors   []ActorDef
	Goal     []core.Coord
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Width:    yl.Size.W,
		Height:   yl.Size.H,
		Bricks:   make([]BrickDef, 0, len(yl.Bricks)),
		Actors:   make([]ActorDef, 0, len(yl.Actors)),
		Goal:     make([]core.Coord, 0, len(yl.Goal)),
		Metadata: yl.Metadata,
	}
	if level.Name == "" {
		level.Name = level.ID
	}

	for i, b := range yl.Bricks {
		kind, ok := core.ParseKind(b.Kind)
		if !ok {
			return Level{}, fmt.Errorf("brick %d: unknown kind %q", i, b.Kind)
		}
		color := core.ColorGrey
		if kind == core.KindMovable {
			color = core.ColorRed
			if b.Color != "" {
				if color, ok = core.ParseColor(b.Color); !ok {
					return Level{}, fmt.Errorf("brick %d: unknown color %q", i, b.Color)
				}
			}
		}
		level.Bricks = append(level.Bricks, BrickDef{
			Label: b.Label,
			Pos:   core.C(b.X, b.Y),
			Width: b.W,
			Kind:  kind,
			Color: color,
		})
	}

	for _, a := range yl.Actors {
		w, h := a.W, a.H
		if w == 0 {
			w = 1
		}
		if h == 0 {
			h = 2
		}
		level.Actors = append(level.Actors, ActorDef{Name: a.Name, Pos: core.C(a.X, a.Y), Width: w, Height: h})
	}

	for _, g := range yl.Goal {
		level.Goal = append(level.Goal, core.C(g.X, g.Y))
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// Package config provides YAML-based configuration loading for Brickyard.
package config

import "github.com/vovakirdan/brickyard/internal/core"

// BricksConfig contains all configuration for the brick puzzle.
type BricksConfig struct {
	Picker PickerConfig `yaml:"picker"`
	Render RenderConfig `yaml:"render"`
	Levels LevelsConfig `yaml:"levels"`
}

// PickerConfig tunes how pointer input turns into detach and place calls.
type PickerConfig struct {
	DragThreshold   int `yaml:"drag_threshold"`   // Screen rows of vertical drag that pick a direction
	ReevaluateTicks int `yaml:"reevaluate_ticks"` // Max ticks between hover refreshes
}

// RenderConfig defines how the board is drawn in the terminal.
type RenderConfig struct {
	CellWidth    int     `yaml:"cell_width"` // Screen columns per grid cell
	ValidAlpha   float64 `yaml:"valid_alpha"`
	InvalidAlpha float64 `yaml:"invalid_alpha"`
	ShowPaths    bool    `yaml:"show_paths"` // Overlay anchor paths on bricks
}

// LevelsConfig points at an external level directory.
// Empty means the built-in levels.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}

// Validate clamps out-of-range values to something playable.
func (c *BricksConfig) Validate() {
	d := DefaultBricksConfig()

	if c.Picker.DragThreshold < 1 {
		c.Picker.DragThreshold = d.Picker.DragThreshold
	}
	if c.Picker.ReevaluateTicks < 1 {
		c.Picker.ReevaluateTicks = d.Picker.ReevaluateTicks
	}
	if c.Render.CellWidth < 1 || c.Render.CellWidth > 4 {
		c.Render.CellWidth = d.Render.CellWidth
	}
	c.Render.ValidAlpha = core.ClampF(c.Render.ValidAlpha, 0, 1)
	c.Render.InvalidAlpha = core.ClampF(c.Render.InvalidAlpha, 0, 1)
}


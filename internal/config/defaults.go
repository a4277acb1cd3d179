package config

import (
	_ "embed"
)

//go:embed defaults/bricks.yaml
var defaultBricksYAML []byte

// DefaultBricksConfig returns the default puzzle configuration.
func DefaultBricksConfig() BricksConfig {
	return BricksConfig{
		Picker: PickerConfig{
			DragThreshold:   1,
			ReevaluateTicks: 6,
		},
		Render: RenderConfig{
			CellWidth:    2,
			ValidAlpha:   0.9,
			InvalidAlpha: 0.4,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "bricks":
		return defaultBricksYAML
	default:
		return nil
	}
}

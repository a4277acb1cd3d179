package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultBricksConfig()
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("bricks"), &cfg))
	assert.Equal(t, DefaultBricksConfig(), cfg)
	assert.Nil(t, GetDefaultYAML("flappy"))
}

func TestLoadBricksCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bricks.yaml")
	data := []byte("picker:\n  drag_threshold: 3\nrender:\n  show_paths: true\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadBricks(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Picker.DragThreshold)
	assert.True(t, cfg.Render.ShowPaths)
	assert.Equal(t, 6, cfg.Picker.ReevaluateTicks, "unset keys keep their defaults")
	assert.Equal(t, 2, cfg.Render.CellWidth)
}

func TestLoadBricksMissingCustomPath(t *testing.T) {
	_, err := LoadBricks(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadBricksBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bricks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("picker: [1, 2"), 0o600))

	_, err := LoadBricks(path)
	assert.Error(t, err)
}

func TestValidateClamps(t *testing.T) {
	cfg := BricksConfig{
		Picker: PickerConfig{DragThreshold: 0, ReevaluateTicks: -4},
		Render: RenderConfig{CellWidth: 9, ValidAlpha: 1.7, InvalidAlpha: -0.2},
	}
	cfg.Validate()

	assert.Equal(t, 1, cfg.Picker.DragThreshold)
	assert.Equal(t, 6, cfg.Picker.ReevaluateTicks)
	assert.Equal(t, 2, cfg.Render.CellWidth)
	assert.Equal(t, 1.0, cfg.Render.ValidAlpha)
	assert.Equal(t, 0.0, cfg.Render.InvalidAlpha)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandHome("~/.brickyard/solves.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".brickyard", "solves.db"), got)

	got, err = ExpandHome("/tmp/x.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", got)
}

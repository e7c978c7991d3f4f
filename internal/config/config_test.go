package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 40, cfg.GridSize)
	assert.Equal(t, 800, cfg.WindowWidth)
	assert.Equal(t, gridpath.KindManhattan, cfg.HeuristicKind())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridpath.yaml")
	data := []byte("grid_size: 20\nheuristic: chebyshev\nwalls:\n  density: 0.5\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.GridSize)
	assert.Equal(t, gridpath.KindChebyshev, cfg.HeuristicKind())
	assert.Equal(t, 0.5, cfg.Walls.Density)
	assert.Equal(t, 200, cfg.Walls.Steps, "unset keys keep defaults")
}

func TestLoad_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridpath.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"grid_size": 12, "steps_per_frame": 4}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.GridSize)
	assert.Equal(t, 4, cfg.StepsPerFrame)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid_size: 20\n"), 0o600))
	t.Setenv("GRIDPATH_GRID_SIZE", "30")
	t.Setenv("GRIDPATH_HEURISTIC", "euclidean")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.GridSize)
	assert.Equal(t, gridpath.KindEuclidean, cfg.HeuristicKind())
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("GRIDPATH_HEURISTIC", "diagonal")
	_, err := Load("")
	assert.ErrorIs(t, err, gridpath.ErrUnknownHeuristic)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny grid", func(c *Config) { c.GridSize = 1 }},
		{"window smaller than grid", func(c *Config) { c.WindowWidth = 10 }},
		{"zero steps per frame", func(c *Config) { c.StepsPerFrame = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"density above one", func(c *Config) { c.Walls.Density = 1.5 }},
		{"negative clusters", func(c *Config) { c.Walls.Clusters = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel("warning")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

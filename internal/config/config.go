// Package config loads front-end settings for the gridpath command.
//
// Values are layered with priority env > file > defaults. Files may be YAML
// or JSON; a missing file is not an error.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridpath"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GRIDPATH_"

// Config contains all settings consumed by the command and the visualizer.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after creation.
type Config struct {
	// GridSize is the side length N of the N×N board.
	GridSize int `json:"grid_size" yaml:"grid_size"`

	// WindowWidth is the window side length in pixels.
	WindowWidth int `json:"window_width" yaml:"window_width"`

	// Heuristic names the initially selected heuristic.
	Heuristic string `json:"heuristic" yaml:"heuristic"`

	// StepsPerFrame is how many search callbacks the visualizer releases per frame.
	StepsPerFrame int `json:"steps_per_frame" yaml:"steps_per_frame"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`

	// MetricsAddr serves Prometheus metrics when non-empty, e.g. ":9100".
	MetricsAddr string `json:"metrics_addr" yaml:"metrics_addr"`

	// Walls configures random clustered wall generation.
	Walls WallConfig `json:"walls" yaml:"walls"`
}

// WallConfig controls the random-walk wall scatter.
type WallConfig struct {
	Clusters int     `json:"clusters" yaml:"clusters"`
	Steps    int     `json:"steps" yaml:"steps"`
	Density  float64 `json:"density" yaml:"density"`
}

// Default returns the classic 40×40 board in an 800px window.
func Default() Config {
	return Config{
		GridSize:      40,
		WindowWidth:   800,
		Heuristic:     gridpath.KindManhattan.String(),
		StepsPerFrame: 1,
		LogLevel:      "info",
		Walls: WallConfig{
			Clusters: 8,
			Steps:    200,
			Density:  0.25,
		},
	}
}

// Load reads configuration from path (optional), applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	applyEnv(&cfg, os.Getenv)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv(EnvPrefix + "GRID_SIZE"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.GridSize = i
		}
	}
	if v := getenv(EnvPrefix + "WINDOW_WIDTH"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.WindowWidth = i
		}
	}
	if v := getenv(EnvPrefix + "HEURISTIC"); v != "" {
		cfg.Heuristic = v
	}
	if v := getenv(EnvPrefix + "STEPS_PER_FRAME"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.StepsPerFrame = i
		}
	}
	if v := getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvPrefix + "METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := getenv(EnvPrefix + "WALL_DENSITY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Walls.Density = f
		}
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.GridSize < 2 {
		return fmt.Errorf("grid_size must be >= 2")
	}
	if c.WindowWidth < c.GridSize {
		return fmt.Errorf("window_width must be at least grid_size pixels")
	}
	if _, err := gridpath.ParseHeuristic(c.Heuristic); err != nil {
		return err
	}
	if c.StepsPerFrame < 1 {
		return fmt.Errorf("steps_per_frame must be >= 1")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Walls.Density < 0 || c.Walls.Density > 1 {
		return fmt.Errorf("walls.density must be between 0 and 1")
	}
	if c.Walls.Clusters < 0 || c.Walls.Steps < 0 {
		return fmt.Errorf("walls.clusters and walls.steps must be >= 0")
	}
	return nil
}

// HeuristicKind returns the parsed heuristic. Call Validate first.
func (c Config) HeuristicKind() gridpath.HeuristicKind {
	kind, _ := gridpath.ParseHeuristic(c.Heuristic)
	return kind
}

// ParseLevel maps a log level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", name)
	}
}

// Package config loads oceanroute's YAML configuration, following the
// same "sensible defaults, overridden by an optional file" pattern the
// rest of the corpus uses for server configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable the CLI subcommands read, rather than
// hardcoding them (spec.md §6 subcommands all take these as
// overridable defaults).
type Config struct {
	// DataDir is the root directory for imported GeoJSON and generated
	// graph files ("data/graph/<name>.bin" etc.).
	DataDir string `yaml:"data_dir"`

	// LogLevel controls applog's global zerolog level.
	LogLevel string `yaml:"log_level"`

	// Graph generation.
	NodeCount int     `yaml:"node_count"`
	CutoffKM  float64 `yaml:"cutoff_km"`
	Seed      int64   `yaml:"seed"`

	// Contraction Hierarchies.
	CHNodeFloor        int    `yaml:"ch_node_floor"`
	CheckpointPath     string `yaml:"checkpoint_path"`
	CheckpointEveryMin int    `yaml:"checkpoint_every_min"`
}

// Default returns Config populated with the values oceanroute uses
// when no config file is present.
func Default() Config {
	return Config{
		DataDir:            "data/graph",
		LogLevel:           "info",
		NodeCount:          4_000_000,
		CutoffKM:           30,
		Seed:               1,
		CHNodeFloor:        50,
		CheckpointPath:     "data/graph/ch_temp.bin",
		CheckpointEveryMin: 5,
	}
}

// Load reads path and overlays it onto Default(). A missing file is
// not an error: it just means "use the defaults".
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, nil
}

package main

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config drives a scan run. Flags override file values.
type Config struct {
	// Seeds is the number of keys to test.
	Seeds uint32 `yaml:"seeds"`
	// Generations bounds each trajectory.
	Generations int `yaml:"generations"`
	// Contiguous tests seeds 0..Seeds-1 instead of random keys.
	Contiguous bool `yaml:"contiguous"`
	// Template is a path to a glyph grid file; empty means the embedded
	// shift template.
	Template string `yaml:"template"`
	// Workers caps concurrent seed scans.
	Workers int `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Seeds:       1,
		Generations: 32000,
		Workers:     runtime.NumCPU(),
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// Package config loads sokoplan.yaml. Missing file or empty path yields the
// defaults; a present file is validated strictly.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"sokoplan.ai/internal/search"
)

type Config struct {
	Listen           string `yaml:"listen"`
	DataDir          string `yaml:"data_dir"`
	SchemaDir        string `yaml:"schema_dir"`
	DefaultAlgorithm string `yaml:"default_algorithm"`
	DefaultHeuristic string `yaml:"default_heuristic"`
	RecordRuns       bool   `yaml:"record_runs"`
	Debug            bool   `yaml:"debug"`
}

func defaults() Config {
	return Config{
		Listen:           ":8080",
		DataDir:          "./data",
		SchemaDir:        "./schemas",
		DefaultAlgorithm: search.AlgorithmBFS,
		DefaultHeuristic: "manhattan",
		RecordRuns:       true,
	}
}

func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.Normalize()
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("sokoplan.yaml: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("sokoplan.yaml: %w", err)
	}
	return cfg, nil
}

func (c *Config) Normalize() {
	d := defaults()
	if strings.TrimSpace(c.Listen) == "" {
		c.Listen = d.Listen
	}
	if strings.TrimSpace(c.DataDir) == "" {
		c.DataDir = d.DataDir
	}
	if strings.TrimSpace(c.SchemaDir) == "" {
		c.SchemaDir = d.SchemaDir
	}
	c.DefaultAlgorithm = strings.ToLower(strings.TrimSpace(c.DefaultAlgorithm))
	if c.DefaultAlgorithm == "" {
		c.DefaultAlgorithm = d.DefaultAlgorithm
	}
	c.DefaultHeuristic = strings.ToLower(strings.TrimSpace(c.DefaultHeuristic))
	if c.DefaultHeuristic == "" {
		c.DefaultHeuristic = d.DefaultHeuristic
	}
}

func (c *Config) Validate() error {
	okAlgo := false
	for _, name := range search.Names() {
		if c.DefaultAlgorithm == name {
			okAlgo = true
			break
		}
	}
	if !okAlgo {
		return fmt.Errorf("default_algorithm %q: must be one of %s", c.DefaultAlgorithm, strings.Join(search.Names(), ", "))
	}
	if c.DefaultHeuristic != "manhattan" && c.DefaultHeuristic != "euclidean" {
		return fmt.Errorf("default_heuristic %q: must be manhattan or euclidean", c.DefaultHeuristic)
	}
	return nil
}

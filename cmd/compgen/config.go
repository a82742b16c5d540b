package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/compgen/export"
)

// fileConfig is the YAML configuration accepted by `compgen generate
// --config`. Every field is optional; explicit command-line flags override
// whatever the file sets.
type fileConfig struct {
	Output           string `yaml:"output"`
	MinDepth         int    `yaml:"min_depth"`
	MaxDepth         int    `yaml:"max_depth"`
	RequireCoder     *bool  `yaml:"require_coder"`
	IncludePipelines *bool  `yaml:"include_pipelines"`
}

// loadConfig reads and parses a YAML config file.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// apply overlays file settings onto the export config and output directory,
// touching only fields the file actually set.
func (fc fileConfig) apply(out *string, cfg *export.Config) {
	if fc.Output != "" {
		*out = fc.Output
	}
	if fc.MinDepth > 0 {
		cfg.MinDepth = fc.MinDepth
	}
	if fc.MaxDepth > 0 {
		cfg.MaxDepth = fc.MaxDepth
	}
	if fc.RequireCoder != nil {
		cfg.RequireEntropyCoder = *fc.RequireCoder
	}
	if fc.IncludePipelines != nil {
		cfg.IncludePipelines = *fc.IncludePipelines
	}
}

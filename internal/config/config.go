package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSize   = 10
	DefaultOutput = "term"
	DefaultFile   = "-"
	// MaxSize bounds the grid so a PNG stays within a sane allocation.
	MaxSize = 1024
)

type Config struct {
	Size   int    `yaml:"size"`
	Output string `yaml:"output"`
	File   string `yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:   DefaultSize,
		Output: DefaultOutput,
		File:   DefaultFile,
	}
}

// Load reads a YAML config file. Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Merge(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays the fields present in the YAML file at path onto c.
func (c *Config) Merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Size < 0 || c.Size > MaxSize {
		return fmt.Errorf("size %d out of range [0, %d]", c.Size, MaxSize)
	}
	if c.File == "" {
		return fmt.Errorf("empty output file (use %q for stdout)", DefaultFile)
	}
	switch c.Output {
	case "term", "png", "svg":
	default:
		return fmt.Errorf("unsupported output format '%s'", c.Output)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the detect command's flags so settings can live in a
// YAML file. Explicitly-set flags override config file values.
type Config struct {
	Period      int     `yaml:"period"`
	K           float64 `yaml:"k"`
	Alpha       float64 `yaml:"alpha"`
	Direction   string  `yaml:"direction"`
	Decompose   *bool   `yaml:"decompose"`
	ValueColumn string  `yaml:"value_column"`
	DateColumn  string  `yaml:"date_column"`
	DateFormat  string  `yaml:"date_format"`
}

// loadConfig reads and parses a YAML config file.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

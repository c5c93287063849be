package runtime

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime settings loaded from a YAML file
type Config struct {
	MaxStringConcat int      `yaml:"max_string_concat,omitempty"`
	Trace           bool     `yaml:"trace,omitempty"`
	TraceFilter     []string `yaml:"trace_filter,omitempty"`
}

// DefaultConfig returns the settings used when no file is given
func DefaultConfig() *Config {
	return &Config{MaxStringConcat: DefaultMaxStringConcat}
}

// LoadConfig reads a YAML config file. Missing keys keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config data
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.MaxStringConcat = ClampStringLimit(cfg.MaxStringConcat)
	return cfg, nil
}

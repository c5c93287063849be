package program

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a program file
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	prog, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return prog, nil
}

// Parse decodes and validates YAML program data
func Parse(data []byte) (*Program, error) {
	var prog Program
	if err := yaml.Unmarshal(data, &prog); err != nil {
		return nil, err
	}
	if err := prog.Validate(); err != nil {
		return nil, err
	}
	return &prog, nil
}

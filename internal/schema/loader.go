package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// toolFile is the on-disk format for user-defined tools.
type toolFile struct {
	Tools []*ToolSchema `yaml:"tools"`
}

// LoadFile parses tool definitions from a YAML file. The file holds a
// top-level `tools:` list using the same shape as the built-in definitions.
// Parsed schemas are validated before being returned.
func LoadFile(path string) ([]*ToolSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tool file %s: %w", path, err)
	}

	var file toolFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tool file %s: %w", path, err)
	}

	for _, tool := range file.Tools {
		if err := tool.validate(); err != nil {
			return nil, fmt.Errorf("invalid tool in %s: %w", path, err)
		}
	}
	return file.Tools, nil
}

// RegisterFile loads a tool file and registers every definition it contains.
func RegisterFile(r *Registry, path string) error {
	tools, err := LoadFile(path)
	if err != nil {
		return err
	}
	for _, tool := range tools {
		if err := r.Register(tool); err != nil {
			return err
		}
	}
	return nil
}

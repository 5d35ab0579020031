package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-viewkit/pkg/component"
)

// loadParams reads a parameter mapping from a YAML or JSON file.
func loadParams(path string) (component.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parseParams(data)
}

func parseParams(data []byte) (component.Params, error) {
	if strings.TrimSpace(string(data)) == "" {
		return component.Params{}, nil
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode parameters: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return component.Params(raw), nil
}

package faq

import (
	"fmt"
	"io"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

type entryFile struct {
	Questions []Entry `yaml:"questions"`
}

// Load parses FAQ entries from YAML or JSON. The document is either a list of
// entries or a mapping with a "questions" list.
func Load(r io.Reader) ([]Entry, error) {
	if r == nil {
		return nil, fmt.Errorf("faq: missing reader")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("faq: read entries: %w", err)
	}
	return parseEntries(data)
}

// LoadFS parses FAQ entries from the file at path inside fsys.
func LoadFS(fsys fs.FS, path string) ([]Entry, error) {
	if fsys == nil {
		return nil, fmt.Errorf("faq: missing filesystem")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("faq: read %s: %w", path, err)
	}
	entries, err := parseEntries(data)
	if err != nil {
		return nil, fmt.Errorf("faq: %s: %w", path, err)
	}
	return entries, nil
}

func parseEntries(data []byte) ([]Entry, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("faq: parse entries: %w", err)
	}
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	var entries []Entry
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&entries); err != nil {
			return nil, fmt.Errorf("faq: parse entries: %w", err)
		}
	case yaml.MappingNode:
		if !hasKey(node, "questions") {
			return nil, fmt.Errorf("faq: parse entries: mapping has no %q list", "questions")
		}
		var doc entryFile
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("faq: parse entries: %w", err)
		}
		entries = doc.Questions
	default:
		return nil, fmt.Errorf("faq: parse entries: expected a list or a %q mapping", "questions")
	}

	for i, entry := range entries {
		if strings.TrimSpace(entry.Question) == "" {
			return nil, fmt.Errorf("faq: entry %d has no question", i)
		}
	}
	return entries, nil
}

func hasKey(mapping *yaml.Node, key string) bool {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return true
		}
	}
	return false
}

// Package catalog loads suggestion pools from disk and indexes them.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gravitrone/autotags/internal/tags"
)

// Load reads a suggestion file. YAML, JSON and TOML are recognized by
// extension. The document is either a list or a table with a "suggestions"
// key; entries are plain names or {id, name} records.
func Load(path string) ([]tags.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suggestions: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes suggestion data in the format named by ext.
func Parse(data []byte, ext string) ([]tags.Item, error) {
	var doc any
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml", "":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml suggestions: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse json suggestions: %w", err)
		}
	case "toml":
		var table map[string]any
		if _, err := toml.Decode(string(data), &table); err != nil {
			return nil, fmt.Errorf("parse toml suggestions: %w", err)
		}
		doc = table
	default:
		return nil, fmt.Errorf("unsupported suggestions format %q", ext)
	}
	return fromDocument(doc)
}

func fromDocument(doc any) ([]tags.Item, error) {
	switch v := doc.(type) {
	case nil:
		return []tags.Item{}, nil
	case map[string]any:
		list, ok := v["suggestions"]
		if !ok {
			return nil, fmt.Errorf("suggestions key missing")
		}
		return fromList(list)
	default:
		return fromList(v)
	}
}

func fromList(raw any) ([]tags.Item, error) {
	var entries []any
	switch v := raw.(type) {
	case []any:
		entries = v
	case []map[string]any:
		for _, m := range v {
			entries = append(entries, m)
		}
	case nil:
		return []tags.Item{}, nil
	default:
		return nil, fmt.Errorf("suggestions must be a list, got %T", raw)
	}

	items := make([]tags.Item, 0, len(entries))
	for i, entry := range entries {
		item, err := fromEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("suggestion %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func fromEntry(entry any) (tags.Item, error) {
	switch v := entry.(type) {
	case string:
		name := strings.TrimSpace(v)
		if name == "" {
			return tags.Item{}, fmt.Errorf("empty name")
		}
		return tags.Item{Name: name}, nil
	case map[string]any:
		name, _ := v["name"].(string)
		name = strings.TrimSpace(name)
		if name == "" {
			return tags.Item{}, fmt.Errorf("name is required")
		}
		item := tags.Item{Name: name}
		if id, ok := v["id"]; ok && id != nil {
			item.ID = fmt.Sprint(id)
		}
		return item, nil
	default:
		return tags.Item{}, fmt.Errorf("unsupported entry %T", entry)
	}
}

// Merge appends the entries of extra whose names are not already in base,
// compared case-insensitively. base keeps its order and wins on conflicts.
func Merge(base, extra []tags.Item) []tags.Item {
	if base == nil && extra == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(base)+len(extra))
	out := make([]tags.Item, 0, len(base)+len(extra))
	for _, list := range [][]tags.Item{base, extra} {
		for _, item := range list {
			key := strings.ToLower(item.Name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

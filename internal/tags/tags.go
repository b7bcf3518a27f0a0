// Package tags implements the interaction core of a tag input: a query
// string, suggestion filtering, and the rules that turn keystrokes into tag
// additions and deletions.
package tags

import "strings"

// Named is anything with a display name. Tags and suggestions are host-owned
// records; the controller only reads their names.
type Named interface {
	DisplayName() string
}

// Item is a minimal Named record.
type Item struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Name string `json:"name" yaml:"name" toml:"name"`
}

// DisplayName returns the item name.
func (i Item) DisplayName() string {
	return i.Name
}

// Names returns the display names of items in order.
func Names[T Named](items []T) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.DisplayName()
	}
	return out
}

// Filter keeps candidates whose name contains query, ignoring case. It returns
// false when the query is blank or no candidates were supplied, which is
// different from an empty match.
func Filter[T Named](query string, candidates []T) ([]T, bool) {
	if strings.TrimSpace(query) == "" || candidates == nil {
		return nil, false
	}
	needle := strings.ToUpper(query)
	results := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if strings.Contains(strings.ToUpper(c.DisplayName()), needle) {
			results = append(results, c)
		}
	}
	return results, true
}

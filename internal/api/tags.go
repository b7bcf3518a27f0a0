package api

import (
	"fmt"
	"strings"

	"github.com/gravitrone/autotags/internal/tags"
)

// ListTags returns tags whose name matches search. An empty search lists all.
func (c *Client) ListTags(search string, limit int) ([]Tag, error) {
	params := QueryParams{}
	if s := strings.TrimSpace(search); s != "" {
		params["search"] = s
	}
	if limit > 0 {
		params["limit"] = fmt.Sprintf("%d", limit)
	}
	data, err := c.get(buildQuery("/api/tags", params))
	if err != nil {
		return nil, err
	}
	return decodeList[Tag](data)
}

// CreateTag persists a new tag.
func (c *Client) CreateTag(name string) (*Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("tag name is required")
	}
	data, err := c.post("/api/tags", CreateTagInput{Name: name})
	if err != nil {
		return nil, err
	}
	return decodeOne[Tag](data)
}

// Suggestions fetches the full tag list as suggestion records.
func (c *Client) Suggestions(limit int) ([]tags.Item, error) {
	rows, err := c.ListTags("", limit)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	items := make([]tags.Item, 0, len(rows))
	for _, r := range rows {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		items = append(items, r.Item())
	}
	return items, nil
}

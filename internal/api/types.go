package api

import (
	"time"

	"github.com/gravitrone/autotags/internal/tags"
)

// --- API Response Envelope ---

type apiResponse[T any] struct {
	Data  T       `json:"data"`
	Error *apiErr `json:"error,omitempty"`
}

type apiErr struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// --- Tags ---

// Tag is a tag row stored by the tag service.
type Tag struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	UsageCount int       `json:"usage_count,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// Item converts the row into a suggestion record.
func (t Tag) Item() tags.Item {
	return tags.Item{ID: t.ID, Name: t.Name}
}

// CreateTagInput is the body of a tag creation request.
type CreateTagInput struct {
	Name string `json:"name"`
}

// QueryParams is a map of URL query parameters.
type QueryParams map[string]string

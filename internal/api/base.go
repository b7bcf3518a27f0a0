package api

import "time"

// DefaultBaseURL is the local tag service address offered by init.
const DefaultBaseURL = "http://localhost:8000"

// NewDefaultClient builds a client pointed at the default tag service URL.
func NewDefaultClient(apiKey string, timeout ...time.Duration) *Client {
	return NewClient(DefaultBaseURL, apiKey, timeout...)
}

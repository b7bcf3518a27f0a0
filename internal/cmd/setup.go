package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gravitrone/autotags/internal/api"
	"github.com/gravitrone/autotags/internal/catalog"
	"github.com/gravitrone/autotags/internal/config"
	"github.com/gravitrone/autotags/internal/tags"
)

// LoadConfig reads the config file, falling back to defaults when none exists.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Overrides are command-line values that take precedence over the config.
type Overrides struct {
	Space           bool
	Below           bool
	Prefix          bool
	SuggestionsFile string
	Placeholder     string
}

// Apply copies set overrides onto cfg.
func (o Overrides) Apply(cfg *config.Config) {
	if o.Space {
		cfg.CreateTagOnSpace = true
	}
	if o.Below {
		cfg.TagsOrientedBelow = true
	}
	if o.Prefix {
		cfg.Match = config.MatchPrefix
	}
	if s := strings.TrimSpace(o.SuggestionsFile); s != "" {
		cfg.SuggestionsFile = s
	}
	if o.Placeholder != "" {
		cfg.Placeholder = o.Placeholder
	}
}

// ClientFor returns a tag service client, or nil when no server is configured.
func ClientFor(cfg *config.Config) *api.Client {
	if strings.TrimSpace(cfg.ServerURL) == "" {
		return nil
	}
	return api.NewClient(cfg.ServerURL, cfg.APIKey)
}

// LoadPool reads the local suggestion file. No file configured yields nil.
func LoadPool(cfg *config.Config) ([]tags.Item, error) {
	path := strings.TrimSpace(cfg.SuggestionsFile)
	if path == "" {
		return nil, nil
	}
	pool, err := catalog.Load(expandHome(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return pool, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + strings.TrimPrefix(path, "~")
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Match modes for suggestion filtering.
const (
	MatchSubstring = "substring"
	MatchPrefix    = "prefix"
)

// Config holds picker configuration stored at ~/.autotags/config.
type Config struct {
	CreateTagOnSpace    bool   `yaml:"create_tag_on_space"`
	TagsOrientedBelow   bool   `yaml:"tags_oriented_below"`
	Placeholder         string `yaml:"placeholder,omitempty"`
	AutoFocus           *bool  `yaml:"auto_focus,omitempty"`
	Match               string `yaml:"match,omitempty"`
	SuggestionsFile     string `yaml:"suggestions_file,omitempty"`
	ServerURL           string `yaml:"server_url,omitempty"`
	APIKey              string `yaml:"api_key,omitempty"`
	BackspaceDebounceMS int    `yaml:"backspace_debounce_ms,omitempty"`
	SubmitGuardMS       int    `yaml:"submit_guard_ms,omitempty"`
	LogFile             string `yaml:"log_file,omitempty"`
	LogLevel            string `yaml:"log_level,omitempty"`
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".autotags", "config")
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Match: MatchSubstring}
}

// Load reads and parses the config file. Returns error if missing, invalid,
// or holding an api key with loose permissions.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if perm := info.Mode().Perm(); cfg.APIKey != "" && perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated and numeric fields.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Match)) {
	case "", MatchSubstring, MatchPrefix:
	default:
		return fmt.Errorf("config match must be %q or %q, got %q", MatchSubstring, MatchPrefix, c.Match)
	}
	if c.BackspaceDebounceMS < 0 || c.SubmitGuardMS < 0 {
		return fmt.Errorf("config durations must not be negative")
	}
	return nil
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// PrefixMatch reports whether suggestions use name-prefix matching.
func (c *Config) PrefixMatch() bool {
	return strings.EqualFold(strings.TrimSpace(c.Match), MatchPrefix)
}

// Focus reports whether the input starts focused. Defaults to true.
func (c *Config) Focus() bool {
	return c.AutoFocus == nil || *c.AutoFocus
}

// BackspaceDebounce returns the configured debounce, zero meaning default.
func (c *Config) BackspaceDebounce() time.Duration {
	return time.Duration(c.BackspaceDebounceMS) * time.Millisecond
}

// SubmitGuard returns the configured guard, zero meaning default.
func (c *Config) SubmitGuard() time.Duration {
	return time.Duration(c.SubmitGuardMS) * time.Millisecond
}

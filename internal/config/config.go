// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management
// for transcript-tui.
//
// Supports both TOML and JSON configuration formats, with sensible
// defaults, environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.transcript-tui/config.toml
//   - ~/.transcript-tui/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/transcript-tui/internal/policy"
	"github.com/jeranaias/transcript-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete transcript-tui configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Link activation policy
	Links LinksConfig `toml:"links" json:"links"`

	// Image loading policy
	Images ImagesConfig `toml:"images" json:"images"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Storage configuration
	Storage StorageConfig `toml:"storage" json:"storage"`

	// Search index configuration
	Index IndexConfig `toml:"index" json:"index"`
}

// LinksConfig controls which link targets the renderer may activate.
type LinksConfig struct {
	// AllowedSchemes lists URL schemes a link may use.
	AllowedSchemes []string `toml:"allowed_schemes" json:"allowed_schemes"`
	// AllowedHosts restricts links to the listed hosts. Absent (nil)
	// means any host; an explicit empty list blocks every host. The
	// nil/empty distinction is intentional and must be preserved.
	AllowedHosts []string `toml:"allowed_hosts" json:"allowed_hosts,omitempty"`
}

// ImagesConfig controls how image references are loaded.
type ImagesConfig struct {
	// Mode is one of "disabled", "tap_to_load" or "allow".
	Mode string `toml:"mode" json:"mode"`
	// AllowedSchemes lists URL schemes an image may be fetched from.
	AllowedSchemes []string `toml:"allowed_schemes" json:"allowed_schemes"`
	// AllowedHosts restricts image fetches to the listed hosts.
	// Same nil/empty semantics as LinksConfig.AllowedHosts.
	AllowedHosts []string `toml:"allowed_hosts" json:"allowed_hosts,omitempty"`
}

// Image mode values.
const (
	ImageModeDisabled  = "disabled"
	ImageModeTapToLoad = "tap_to_load"
	ImageModeAllow     = "allow"
)

// UIConfig contains display configuration.
type UIConfig struct {
	// MaxWidth caps the rendered content width in columns (0 = terminal width).
	MaxWidth int `toml:"max_width" json:"max_width"`
	// ShowTimestamps toggles per-message timestamps.
	ShowTimestamps bool `toml:"show_timestamps" json:"show_timestamps"`
	// ExpandToolCalls starts tool-call views expanded.
	ExpandToolCalls bool `toml:"expand_tool_calls" json:"expand_tool_calls"`
}

// StorageConfig contains transcript store configuration.
type StorageConfig struct {
	// Dir is the transcript directory (empty = ~/.transcript-tui/transcripts).
	Dir string `toml:"dir" json:"dir"`
	// MaxTranscripts limits stored transcripts (0 = unlimited).
	MaxTranscripts int `toml:"max_transcripts" json:"max_transcripts"`
}

// IndexConfig contains search index configuration.
type IndexConfig struct {
	// Enabled toggles the SQLite message index.
	Enabled bool `toml:"enabled" json:"enabled"`
	// Path is the database path (empty = ~/.transcript-tui/index.db).
	Path string `toml:"path" json:"path"`
	// Watch re-indexes transcripts when the store directory changes.
	Watch bool `toml:"watch" json:"watch"`
	// WatchDebounceMs is the debounce window for change events.
	WatchDebounceMs int `toml:"watch_debounce_ms" json:"watch_debounce_ms"`
}

// WatchDebounce returns the debounce window as a duration.
func (c IndexConfig) WatchDebounce() time.Duration {
	return time.Duration(c.WatchDebounceMs) * time.Millisecond
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration: http/https links to
// any host, tap-to-load https-only images.
func Default() *Config {
	return &Config{
		Version: "1",
		Links: LinksConfig{
			AllowedSchemes: []string{"https", "http"},
		},
		Images: ImagesConfig{
			Mode:           ImageModeTapToLoad,
			AllowedSchemes: []string{"https"},
		},
		UI: UIConfig{
			MaxWidth:       100,
			ShowTimestamps: true,
		},
		Storage: StorageConfig{
			MaxTranscripts: 200,
		},
		Index: IndexConfig{
			Enabled:         true,
			Watch:           true,
			WatchDebounceMs: 500,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the configuration directory (~/.transcript-tui).
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".transcript-tui"), nil
}

// PathTOML returns the TOML config file path.
func PathTOML() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// PathJSON returns the JSON config file path.
func PathJSON() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()

	if path, err := PathTOML(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
			return finishLoad(cfg)
		}
	}

	if path, err := PathJSON(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadJSON(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load JSON config: %w", err)
			}
			return finishLoad(cfg)
		}
	}

	return finishLoad(cfg)
}

// finishLoad applies env overrides and validation to a loaded config.
func finishLoad(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to the TOML config file.
func Save(cfg *Config) error {
	path, err := PathTOML()
	if err != nil {
		return err
	}

	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, []byte(buf.String()), 0600)
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration, normalizing where a value can be
// clamped instead of rejected.
func (c *Config) Validate() error {
	switch c.Images.Mode {
	case ImageModeDisabled, ImageModeTapToLoad, ImageModeAllow:
	case "":
		c.Images.Mode = ImageModeTapToLoad
	default:
		return fmt.Errorf("images.mode: unknown mode %q", c.Images.Mode)
	}

	if len(c.Links.AllowedSchemes) == 0 {
		c.Links.AllowedSchemes = []string{"https", "http"}
	}
	if len(c.Images.AllowedSchemes) == 0 {
		c.Images.AllowedSchemes = []string{"https"}
	}

	if c.UI.MaxWidth < 0 {
		c.UI.MaxWidth = 0
	}
	if c.Storage.MaxTranscripts < 0 {
		c.Storage.MaxTranscripts = 0
	}
	if c.Index.WatchDebounceMs <= 0 {
		c.Index.WatchDebounceMs = 500
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - TRANSCRIPT_TUI_LINK_SCHEMES: comma-separated scheme allow-list
//   - TRANSCRIPT_TUI_LINK_HOSTS: comma-separated host allow-list
//   - TRANSCRIPT_TUI_IMAGE_MODE: overrides images.mode
//   - TRANSCRIPT_TUI_STORAGE_DIR: overrides storage.dir
//   - TRANSCRIPT_TUI_NO_INDEX: "1" or "true" disables the search index
func (c *Config) ApplyEnvOverrides() {
	if schemes := os.Getenv("TRANSCRIPT_TUI_LINK_SCHEMES"); schemes != "" {
		c.Links.AllowedSchemes = splitList(schemes)
	}
	if hosts := os.Getenv("TRANSCRIPT_TUI_LINK_HOSTS"); hosts != "" {
		c.Links.AllowedHosts = splitList(hosts)
	}
	if mode := os.Getenv("TRANSCRIPT_TUI_IMAGE_MODE"); mode != "" {
		c.Images.Mode = mode
	}
	if dir := os.Getenv("TRANSCRIPT_TUI_STORAGE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if noIndex := os.Getenv("TRANSCRIPT_TUI_NO_INDEX"); noIndex != "" {
		c.Index.Enabled = !(noIndex == "1" || strings.EqualFold(noIndex, "true"))
	}
}

// splitList splits a comma-separated env value into trimmed entries.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// =============================================================================
// POLICY CONSTRUCTION
// =============================================================================

// LinkPolicy materializes the link security policy from the config.
func (c *Config) LinkPolicy() policy.LinkPolicy {
	return policy.LinkPolicy{
		AllowedSchemes: c.Links.AllowedSchemes,
		AllowedHosts:   c.Links.AllowedHosts,
	}
}

// ImagePolicy materializes the image security policy from the config.
// An unknown mode degrades to tap-to-load, the most conservative mode
// that still shows the user something actionable.
func (c *Config) ImagePolicy() policy.ImagePolicy {
	base := policy.LinkPolicy{
		AllowedSchemes: c.Images.AllowedSchemes,
		AllowedHosts:   c.Images.AllowedHosts,
	}
	switch c.Images.Mode {
	case ImageModeDisabled:
		return policy.ImagesDisabled{}
	case ImageModeAllow:
		return policy.ImagesAllow{LinkPolicy: base}
	default:
		return policy.ImagesTapToLoad{LinkPolicy: base}
	}
}

// Package config loads folio's TOML configuration.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"folio/internal/site"

	"github.com/BurntSushi/toml"
)

// Config is the top-level configuration file.
type Config struct {
	Blog      BlogConfig      `toml:"blog"`
	UI        UIConfig        `toml:"ui"`
	Theme     ThemeConfig     `toml:"theme"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	Content   ContentConfig   `toml:"content"`
}

// BlogConfig controls blog navigation.
type BlogConfig struct {
	// ResetSelectionOnLeave clears the selected post when leaving Blog.
	ResetSelectionOnLeave bool `toml:"reset_selection_on_leave"`
}

// UIConfig controls the terminal program.
type UIConfig struct {
	Mouse       bool `toml:"mouse"`
	AltScreen   bool `toml:"alt_screen"`
	ChartHeight int  `toml:"chart_height"`
}

// ThemeConfig holds lipgloss colour strings ("86", "#4BC0C0").
type ThemeConfig struct {
	Accent    string `toml:"accent"`
	Highlight string `toml:"highlight"`
	Muted     string `toml:"muted"`
	Text      string `toml:"text"`
}

// TelemetryConfig names the service in exported traces. The endpoint comes
// from OTEL_EXPORTER_OTLP_ENDPOINT.
type TelemetryConfig struct {
	ServiceName string `toml:"service_name"`
}

// ContentConfig points at an on-disk catalog instead of the embedded one.
type ContentConfig struct {
	Dir string `toml:"dir"`
}

// SelectionPolicy maps the blog setting onto the controller policy.
func (c *Config) SelectionPolicy() site.SelectionPolicy {
	if c.Blog.ResetSelectionOnLeave {
		return site.ResetOnLeave
	}
	return site.KeepSelection
}

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/folio/config.toml
//  2. ~/.config/folio/config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
// A missing file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader decodes TOML over the defaults, then applies env overrides.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	if cfg.UI.ChartHeight < 2 {
		cfg.UI.ChartHeight = DefaultConfig().UI.ChartHeight
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Mouse:       true,
			AltScreen:   true,
			ChartHeight: 10,
		},
		Theme: ThemeConfig{
			Accent:    "86",
			Highlight: "205",
			Muted:     "241",
			Text:      "252",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "folio",
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FOLIO_RESET_SELECTION"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Blog.ResetSelectionOnLeave = b
		}
	}
	if v := os.Getenv("FOLIO_CONTENT_DIR"); v != "" {
		cfg.Content.Dir = v
	}
	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		cfg.Telemetry.ServiceName = v
	}
}

func searchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "folio", "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "folio", "config.toml"))
	}
	return paths
}

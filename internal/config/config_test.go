package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"folio/internal/site"
)

func TestLoadFromReader_Defaults(t *testing.T) {
	t.Setenv("FOLIO_RESET_SELECTION", "")
	t.Setenv("FOLIO_CONTENT_DIR", "")
	t.Setenv("OTEL_SERVICE_NAME", "")

	cfg, err := LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Blog.ResetSelectionOnLeave {
		t.Error("selection should be kept by default")
	}
	if cfg.SelectionPolicy() != site.KeepSelection {
		t.Errorf("policy = %s, want keep", cfg.SelectionPolicy())
	}
	if !cfg.UI.Mouse || !cfg.UI.AltScreen {
		t.Errorf("mouse and alt screen should default on: %+v", cfg.UI)
	}
	if cfg.UI.ChartHeight != 10 {
		t.Errorf("chart height = %d, want 10", cfg.UI.ChartHeight)
	}
	if cfg.Theme.Accent != "86" {
		t.Errorf("accent = %q", cfg.Theme.Accent)
	}
	if cfg.Telemetry.ServiceName != "folio" {
		t.Errorf("service name = %q", cfg.Telemetry.ServiceName)
	}
}

func TestLoadFromReader_Overrides(t *testing.T) {
	src := `
[blog]
reset_selection_on_leave = true

[ui]
mouse = false
chart_height = 1

[theme]
accent = "#4BC0C0"

[content]
dir = "/srv/folio"
`
	cfg, err := LoadFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.SelectionPolicy() != site.ResetOnLeave {
		t.Errorf("policy = %s, want reset-on-leave", cfg.SelectionPolicy())
	}
	if cfg.UI.Mouse {
		t.Error("mouse should be off")
	}
	if !cfg.UI.AltScreen {
		t.Error("alt screen should keep its default")
	}
	if cfg.UI.ChartHeight != 10 {
		t.Errorf("too-small chart height should fall back to 10, got %d", cfg.UI.ChartHeight)
	}
	if cfg.Theme.Accent != "#4BC0C0" || cfg.Theme.Muted != "241" {
		t.Errorf("theme = %+v", cfg.Theme)
	}
	if cfg.Content.Dir != "/srv/folio" {
		t.Errorf("content dir = %q", cfg.Content.Dir)
	}
}

func TestLoadFromReader_Invalid(t *testing.T) {
	if _, err := LoadFromReader(strings.NewReader("[blog\n")); err == nil {
		t.Error("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FOLIO_RESET_SELECTION", "1")
	t.Setenv("FOLIO_CONTENT_DIR", "/tmp/content")
	t.Setenv("OTEL_SERVICE_NAME", "folio-test")

	cfg, err := LoadFromReader(strings.NewReader("[blog]\nreset_selection_on_leave = false\n"))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if !cfg.Blog.ResetSelectionOnLeave {
		t.Error("env should win over file")
	}
	if cfg.Content.Dir != "/tmp/content" {
		t.Errorf("content dir = %q", cfg.Content.Dir)
	}
	if cfg.Telemetry.ServiceName != "folio-test" {
		t.Errorf("service name = %q", cfg.Telemetry.ServiceName)
	}
}

func TestEnvOverrides_IgnoresGarbage(t *testing.T) {
	t.Setenv("FOLIO_RESET_SELECTION", "maybe")
	cfg, err := LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Blog.ResetSelectionOnLeave {
		t.Error("unparseable bool should be ignored")
	}
}

func TestLoad_SearchesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", t.TempDir())
	if err := os.MkdirAll(filepath.Join(dir, "folio"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "folio", "config.toml"), []byte("[ui]\nalt_screen = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.AltScreen {
		t.Error("expected alt_screen=false from XDG config")
	}
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.UI.AltScreen {
		t.Error("expected defaults when no config file exists")
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.UI.ChartHeight != 10 {
		t.Errorf("expected defaults, got %+v", cfg.UI)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SANDWICH_CONFIG", "")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Title != "Sandwich Builder" || !cfg.UI.Mouse || !cfg.UI.AltScreen {
		t.Fatalf("unexpected ui defaults: %+v", cfg.UI)
	}
	if cfg.UI.DragThreshold != 1 || cfg.UI.Flash != 350*time.Millisecond {
		t.Fatalf("unexpected drag defaults: %+v", cfg.UI)
	}
	if cfg.Log.Path != "" || cfg.Log.Level != "info" {
		t.Fatalf("unexpected log defaults: %+v", cfg.Log)
	}
	if cfg.Source != "" {
		t.Fatalf("source = %q, want empty", cfg.Source)
	}
	if len(cfg.Templates()) == 0 {
		t.Fatalf("expected built-in templates")
	}
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
[ui]
title = "Deli"
mouse = false
drag_threshold = 3
flash = "1s"

[log]
path = "/tmp/sandwich.log"
level = "debug"

[[ingredients]]
id = "rye"
name = "Rye"
icon = "R"
color = "#ffffff"

[[ingredients]]
id = "pastrami"
name = "Pastrami"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Title != "Deli" || cfg.UI.Mouse || cfg.UI.DragThreshold != 3 || cfg.UI.Flash != time.Second {
		t.Fatalf("unexpected ui: %+v", cfg.UI)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("level = %q", cfg.Log.Level)
	}
	if cfg.Source != path {
		t.Fatalf("source = %q, want %q", cfg.Source, path)
	}
	tmpls := cfg.Templates()
	if len(tmpls) != 2 || tmpls[0].ID != "rye" || tmpls[0].Color != "#ffffff" || tmpls[1].Name != "Pastrami" {
		t.Fatalf("unexpected templates: %+v", tmpls)
	}
}

func TestLoadConfigEnvPath(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "[ui]\ntitle = \"From env\"\n")
	t.Setenv("SANDWICH_CONFIG", path)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Title != "From env" {
		t.Fatalf("title = %q", cfg.UI.Title)
	}
}

func TestLoadMissingEnvPathUsesDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("SANDWICH_CONFIG", filepath.Join(t.TempDir(), "gone.toml"))
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != "" || cfg.UI.Title != "Sandwich Builder" {
		t.Fatalf("expected defaults, got source=%q title=%q", cfg.Source, cfg.UI.Title)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SANDWICH_UI_TITLE", "Env title")
	t.Setenv("SANDWICH_LOG_LEVEL", "warn")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Title != "Env title" || cfg.Log.Level != "warn" {
		t.Fatalf("env overrides not applied: %+v %+v", cfg.UI, cfg.Log)
	}
}

func TestLoadErrors(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for an explicit missing file")
	}
	if _, err := Load(writeConfig(t, "[ui\ntitle=")); err == nil {
		t.Fatalf("expected error for malformed toml")
	}
	if _, err := Load(writeConfig(t, "[ui]\ndrag_threshold = -2\n")); err == nil {
		t.Fatalf("expected error for negative drag threshold")
	}
}

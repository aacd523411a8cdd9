package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Editor.TabWidth != DefaultTabWidth {
		t.Errorf("TabWidth = %d, want %d", cfg.Editor.TabWidth, DefaultTabWidth)
	}
	if cfg.Editor.MaxHistory != DefaultMaxHistory {
		t.Errorf("MaxHistory = %d, want %d", cfg.Editor.MaxHistory, DefaultMaxHistory)
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("Logger.Level = %q, want %q", cfg.Logger.Level, "info")
	}
}

func TestValidateResetsInvalidValues(t *testing.T) {
	cfg := &Config{}
	cfg.Editor.TabWidth = -3
	cfg.Editor.MaxHistory = 0
	cfg.validate()

	if cfg.Editor.TabWidth != DefaultTabWidth {
		t.Errorf("TabWidth = %d, want %d", cfg.Editor.TabWidth, DefaultTabWidth)
	}
	if cfg.Editor.MaxHistory != DefaultMaxHistory {
		t.Errorf("MaxHistory = %d, want %d", cfg.Editor.MaxHistory, DefaultMaxHistory)
	}
	if cfg.Editor.StatusBarHeight != StatusBarHeight {
		t.Errorf("StatusBarHeight = %d, want %d", cfg.Editor.StatusBarHeight, StatusBarHeight)
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("Logger.Level = %q, want %q", cfg.Logger.Level, "info")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[logger]
level = "debug"

[editor]
tab_width = 8
system_clipboard = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := loadFromFile(path)
	if err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if cfg.Logger.Level != "debug" {
		t.Errorf("Logger.Level = %q, want %q", cfg.Logger.Level, "debug")
	}
	if cfg.Editor.TabWidth != 8 {
		t.Errorf("TabWidth = %d, want 8", cfg.Editor.TabWidth)
	}
	if !cfg.Editor.SystemClipboard {
		t.Error("SystemClipboard = false, want true")
	}
}

func TestLoadFromMissingFileIsNotAnError(t *testing.T) {
	cfg, err := loadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected an empty config for a missing file")
	}
}

func TestLoadFromMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[editor\ntab_width ="), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := loadFromFile(path); err == nil {
		t.Fatal("expected a parse error for malformed TOML")
	}
}

package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFileMissing(t *testing.T) {
	cfg := loadConfigFile(filepath.Join(t.TempDir(), "absent.toml"))
	if cfg != DefaultConfig() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadConfigFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
snapshot = "/tmp/work.json"
rankdir = "TB"
show_ids = false

[cache]
backend = "redis"
addr = "cache.local:6380"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := loadConfigFile(path)
	if cfg.Snapshot != "/tmp/work.json" {
		t.Errorf("Snapshot = %q", cfg.Snapshot)
	}
	if cfg.RankDir != "TB" {
		t.Errorf("RankDir = %q", cfg.RankDir)
	}
	if cfg.ShowIDs {
		t.Error("ShowIDs should be overridden to false")
	}
	if !cfg.AutoRender {
		t.Error("AutoRender should keep its default when unset")
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.Addr != "cache.local:6380" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}

func TestLoadConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("rankdir = [broken"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if cfg := loadConfigFile(path); cfg != DefaultConfig() {
		t.Errorf("invalid file should yield defaults, got %+v", cfg)
	}
}

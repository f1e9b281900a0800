package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences loaded from config.toml.
type Config struct {
	// Snapshot overrides the default snapshot file path.
	Snapshot string `toml:"snapshot"`

	// RankDir sets the Graphviz layout direction ("LR", "TB", ...).
	RankDir string `toml:"rankdir"`

	// ShowIDs includes entity identifiers in rendered labels.
	ShowIDs bool `toml:"show_ids"`

	// AutoRender re-renders the graph after every edit in the editor.
	AutoRender bool `toml:"autorender"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects the render cache backend.
type CacheConfig struct {
	// Backend is "file" (default), "redis", or "none".
	Backend string `toml:"backend"`

	// Addr is the Redis address (host:port) for the redis backend.
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		RankDir:    "LR",
		ShowIDs:    true,
		AutoRender: true,
		Cache:      CacheConfig{Backend: "file", Addr: "localhost:6379"},
	}
}

// LoadConfig reads config.toml from the XDG config directory. A missing or
// unreadable file yields defaults; a present file overrides only the fields
// it sets.
func LoadConfig() Config {
	dir, err := configDir()
	if err != nil {
		return DefaultConfig()
	}
	return loadConfigFile(filepath.Join(dir, "config.toml"))
}

func loadConfigFile(path string) Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig()
	}
	return cfg
}

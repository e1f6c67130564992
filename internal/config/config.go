package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultServerURL = "https://api.versemate.org"
	configFileName   = "config.toml"
	configDirName    = "versemate"
	DefaultDBName    = "versemate.db"
)

// Valid pager window sizes. The window size must be odd so a center
// slot exists.
var validWindowSizes = map[int]bool{3: true, 5: true, 7: true}

// Config holds the application configuration
type Config struct {
	ServerURL  string `toml:"server_url"`
	DBPath     string `toml:"db_path"`
	WindowSize int    `toml:"window_size"`
	Theme      string `toml:"theme"`
	LastRoute  string `toml:"last_route,omitempty"`
}

// Path returns the default config file location under the user config
// directory, falling back to ~/.config.
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, configDirName, configFileName), nil
}

// LoadOrCreate reads the config file, writing defaults first if it
// does not exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig(path)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath(path)
	}
	if !validWindowSizes[cfg.WindowSize] {
		cfg.WindowSize = 5
	}
	return cfg, nil
}

// Save persists the configuration to the given path.
func Save(path string, cfg Config) error {
	return write(path, cfg)
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig(path string) Config {
	return Config{
		ServerURL:  DefaultServerURL,
		DBPath:     defaultDBPath(path),
		WindowSize: 5,
		Theme:      "dark",
	}
}

func defaultDBPath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), DefaultDBName)
}

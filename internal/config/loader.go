package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	configDir  = ".config/diffpane"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary. Pointer fields
// distinguish "absent" from "false" so a partial file only overrides
// what it names.
type rawConfig struct {
	UI    rawUIConfig    `json:"ui"`
	Watch rawWatchConfig `json:"watch"`
}

type rawUIConfig struct {
	SyntaxHighlight *bool `json:"syntaxHighlight"`
	ShowLineNumbers *bool `json:"showLineNumbers"`
	TabWidth        *int  `json:"tabWidth"`
}

type rawWatchConfig struct {
	Enabled  *bool  `json:"enabled"`
	Debounce string `json:"debounce"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/diffpane/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
		if path == "" {
			return cfg, nil // Return defaults on error
		}
	}

	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	mergeConfig(cfg, &raw)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// UI
	if raw.UI.SyntaxHighlight != nil {
		cfg.UI.SyntaxHighlight = *raw.UI.SyntaxHighlight
	}
	if raw.UI.ShowLineNumbers != nil {
		cfg.UI.ShowLineNumbers = *raw.UI.ShowLineNumbers
	}
	if raw.UI.TabWidth != nil {
		cfg.UI.TabWidth = *raw.UI.TabWidth
	}

	// Watch
	if raw.Watch.Enabled != nil {
		cfg.Watch.Enabled = *raw.Watch.Enabled
	}
	if raw.Watch.Debounce != "" {
		if d, err := time.ParseDuration(raw.Watch.Debounce); err == nil {
			cfg.Watch.Debounce = d
		}
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary that uses string durations.
type saveConfig struct {
	UI    UIConfig        `json:"ui"`
	Watch saveWatchConfig `json:"watch"`
}

type saveWatchConfig struct {
	Enabled  bool   `json:"enabled"`
	Debounce string `json:"debounce"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		UI: cfg.UI,
		Watch: saveWatchConfig{
			Enabled:  cfg.Watch.Enabled,
			Debounce: cfg.Watch.Debounce.String(),
		},
	}
}

// Save writes the config to the given path, or to
// ~/.config/diffpane/config.json when path is empty.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = ConfigPath()
	}
	path = ExpandPath(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	sc := toSaveConfig(cfg)
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

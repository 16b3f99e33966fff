package config

import "time"

// Config is the root configuration structure.
type Config struct {
	UI    UIConfig    `json:"ui"`
	Watch WatchConfig `json:"watch"`
}

// UIConfig configures pane appearance.
type UIConfig struct {
	// SyntaxHighlight enables chroma highlighting on context lines when the
	// diff names a file with a recognized extension. Default: true.
	SyntaxHighlight bool `json:"syntaxHighlight"`
	// ShowLineNumbers enables the line number gutter. Default: true.
	ShowLineNumbers bool `json:"showLineNumbers"`
	// TabWidth is the number of spaces a tab expands to. Default: 4.
	TabWidth int `json:"tabWidth"`
}

// WatchConfig configures diff file watching.
type WatchConfig struct {
	// Enabled turns on watching whenever a diff file is given, without
	// needing the -watch flag. Default: false.
	Enabled bool `json:"enabled"`
	// Debounce is how long to wait after a write before reloading.
	Debounce time.Duration `json:"-"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			SyntaxHighlight: true,
			ShowLineNumbers: true,
			TabWidth:        4,
		},
		Watch: WatchConfig{
			Enabled:  false,
			Debounce: 100 * time.Millisecond,
		},
	}
}

// Validate checks the configuration for errors, repairing out-of-range
// values rather than failing.
func (c *Config) Validate() error {
	if c.UI.TabWidth < 1 || c.UI.TabWidth > 16 {
		c.UI.TabWidth = 4
	}
	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = 100 * time.Millisecond
	}
	return nil
}

package config

// UIConfig holds user interface configuration.
type UIConfig struct {
	// DarkMode forces the dark palette instead of detecting the terminal background.
	DarkMode bool `yaml:"dark_mode"`
}

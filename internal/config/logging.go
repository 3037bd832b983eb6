package config

import "fmt"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`      // debug, info, warn, error
	Format     string          `yaml:"format"`     // json, text
	DebugMode  bool            `yaml:"debug_mode"` // Master toggle - false = no log files
	Dir        string          `yaml:"dir"`
	Categories map[string]bool `yaml:"categories,omitempty"` // Per-category toggles
}

// DefaultLoggingConfig returns logging disabled with the usual directory.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  "info",
		Format: "text",
		Dir:    ".chronos/logs",
	}
}

// Validate checks the level and format names.
func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q (valid: debug, info, warn, error)", c.Level)
	}
	switch c.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid logging.format %q (valid: text, json)", c.Format)
	}
	return nil
}

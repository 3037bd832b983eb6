package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where Chronos looks for its config when --config is not given.
const DefaultConfigPath = ".chronos/config.yaml"

// Config holds all Chronos configuration.
type Config struct {
	LLM     LLMConfig     `yaml:"llm"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LLM:     DefaultLLMConfig(),
		UI:      UIConfig{},
		Logging: DefaultLoggingConfig(),
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// apiKeyEnvVars are checked in order; the first non-empty one wins.
var apiKeyEnvVars = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY"}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	for _, name := range apiKeyEnvVars {
		if key := os.Getenv(name); key != "" {
			c.LLM.APIKey = key
			break
		}
	}

	if model := os.Getenv("CHRONOS_MODEL"); model != "" {
		c.LLM.Model = model
	}

	if os.Getenv("CHRONOS_DARK_MODE") == "1" {
		c.UI.DarkMode = true
	}
}

// Validate validates the configuration. A missing API key is not an error:
// the completion client reports it on the first send.
func (c *Config) Validate() error {
	if err := c.LLM.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

package config

import (
	"fmt"
	"strings"
	"time"
)

// LLMConfig configures the completion service.
type LLMConfig struct {
	APIKey      string  `yaml:"api_key,omitempty"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	TopP        float32 `yaml:"top_p"`
	Timeout     string  `yaml:"timeout"`
}

// DefaultLLMConfig returns the stock sampling parameters.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Model:       "gemini-3-pro-preview",
		Temperature: 0.8,
		TopP:        0.95,
		Timeout:     "120s",
	}
}

// GetTimeout returns the per-request timeout as a duration.
func (c LLMConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 120 * time.Second
	}
	return d
}

func (c LLMConfig) Validate() error {
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("llm.model must not be empty")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be in [0, 2], got %v", c.Temperature)
	}
	if c.TopP <= 0 || c.TopP > 1 {
		return fmt.Errorf("llm.top_p must be in (0, 1], got %v", c.TopP)
	}
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("invalid llm.timeout %q: %w", c.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("llm.timeout must be positive, got %s", d)
		}
	}
	return nil
}

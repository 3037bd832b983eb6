package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range append(apiKeyEnvVars, "CHRONOS_MODEL", "CHRONOS_DARK_MODE") {
		t.Setenv(name, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gemini-3-pro-preview", cfg.LLM.Model)
	assert.InDelta(t, 0.8, cfg.LLM.Temperature, 1e-6)
	assert.InDelta(t, 0.95, cfg.LLM.TopP, 1e-6)
	assert.Equal(t, 120*time.Second, cfg.LLM.GetTimeout())
	assert.False(t, cfg.Logging.DebugMode)
	assert.Equal(t, ".chronos/logs", cfg.Logging.Dir)
	assert.False(t, cfg.UI.DarkMode)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_MergesFileOverDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
llm:
  model: gemini-2.5-flash
  timeout: 30s
ui:
  dark_mode: true
logging:
  debug_mode: true
  level: debug
  categories:
    ui: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	assert.Equal(t, 30*time.Second, cfg.LLM.GetTimeout())
	assert.InDelta(t, 0.8, cfg.LLM.Temperature, 1e-6, "unset keys keep their defaults")
	assert.True(t, cfg.UI.DarkMode)
	assert.True(t, cfg.Logging.DebugMode)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, ".chronos/logs", cfg.Logging.Dir)
	assert.Equal(t, map[string]bool{"ui": false}, cfg.Logging.Categories)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm: [unclosed"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestSaveAndLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.LLM.Model = "gemini-2.5-pro"
	cfg.UI.DarkMode = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestGetTimeout_FallsBackOnGarbage(t *testing.T) {
	c := LLMConfig{Timeout: "soon"}
	assert.Equal(t, 120*time.Second, c.GetTimeout())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"missing api key is fine", func(c *Config) { c.LLM.APIKey = "" }, ""},
		{"empty model", func(c *Config) { c.LLM.Model = " " }, "llm.model"},
		{"temperature too high", func(c *Config) { c.LLM.Temperature = 2.5 }, "llm.temperature"},
		{"negative temperature", func(c *Config) { c.LLM.Temperature = -0.1 }, "llm.temperature"},
		{"zero top_p", func(c *Config) { c.LLM.TopP = 0 }, "llm.top_p"},
		{"top_p above one", func(c *Config) { c.LLM.TopP = 1.5 }, "llm.top_p"},
		{"bad timeout", func(c *Config) { c.LLM.Timeout = "forever" }, "llm.timeout"},
		{"negative timeout", func(c *Config) { c.LLM.Timeout = "-1s" }, "llm.timeout"},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

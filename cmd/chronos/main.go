// Command chronos is the alternate-history chat client.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"chronos/internal/config"
	"chronos/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	apiKey     string
	configPath string
	modelName  string
	timeout    time.Duration
	darkMode   bool

	// cfg is loaded once per invocation by PersistentPreRunE.
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "chronos",
	Short: "Chronos - Alternate History Lab",
	Long: `Chronos is a conversational alternate-history simulator.

Describe a point of divergence and the historian persona explores its
consequences. Mention "wip" anywhere in a message to receive Timeline
Expansion Seeds for developing the scenario further.

Run without arguments to start the interactive chat interface.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractiveChat(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to the log directory")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (or set GEMINI_API_KEY env)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Config file")
	rootCmd.PersistentFlags().StringVar(&modelName, "model", "", "Model identifier (overrides config)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Per-request timeout (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&darkMode, "dark", false, "Force the dark palette")

	rootCmd.AddCommand(askCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errExchangeFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// setup loads .env and the config file, applies flag overrides and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(loaded)
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = loaded

	if err := logging.Initialize(loggingOptions(cfg.Logging)); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	timer := logging.StartTimer(logging.CategoryBoot, "setup")
	defer timer.Stop()

	logging.Boot("config %s: model=%s timeout=%s dark=%v", configPath, cfg.LLM.Model, cfg.LLM.GetTimeout(), cfg.UI.DarkMode)
	if cfg.LLM.APIKey == "" {
		logging.BootError("no API key configured; requests will fail")
	}
	return nil
}

func applyFlagOverrides(c *config.Config) {
	if apiKey != "" {
		c.LLM.APIKey = apiKey
	}
	if modelName != "" {
		c.LLM.Model = modelName
	}
	if timeout > 0 {
		c.LLM.Timeout = timeout.String()
	}
	if darkMode {
		c.UI.DarkMode = true
	}
	if verbose {
		c.Logging.DebugMode = true
		c.Logging.Level = "debug"
	}
}

func loggingOptions(c config.LoggingConfig) logging.Options {
	return logging.Options{
		DebugMode:  c.DebugMode,
		Level:      c.Level,
		Dir:        c.Dir,
		JSONFormat: c.Format == "json",
		Categories: c.Categories,
	}
}

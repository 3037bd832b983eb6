package main

import (
	"fmt"
	"os"

	"chronos/internal/logging"

	"github.com/spf13/cobra"
)

var initForce bool

// initCmd writes the effective configuration to --config.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current settings",
	Long: `Writes the effective configuration (file, environment and flags merged)
to the --config path so it can be edited by hand.

The API key is never written; keep it in GEMINI_API_KEY or a .env file.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configPath); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}

	out := *cfg
	out.LLM.APIKey = ""
	if err := out.Save(configPath); err != nil {
		logging.BootError("config init failed: %v", err)
		return err
	}

	logging.Boot("config written to %s", configPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
	return nil
}

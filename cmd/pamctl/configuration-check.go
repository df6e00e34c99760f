package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/pam-in-go/pkg/config"
)

// configurationCheckCmd represents the configuration check command
var configurationCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the current PAM configuration",
	Long: `Validate the current state of the configuration file and environment.

Example:
  pamctl configuration check`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := checkConfiguration(); err != nil {
			fmt.Fprintf(os.Stderr, "Configuration check failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configurationCmd.AddCommand(configurationCheckCmd)
}

func checkConfiguration() error {
	fmt.Println("Validating configuration...")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Printf("Config file: %s\n", cfg.ConfigFilePath())

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if os.Getenv("DATABASE_URL") == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	fmt.Println("Configuration is valid.")
	return nil
}

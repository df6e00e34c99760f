package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Work with this repo's CHANGELOG.md",
	Long: `Parse, validate and extract entries from Keep a Changelog formatted
markdown files. Used by the release tooling against CHANGELOG.md.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

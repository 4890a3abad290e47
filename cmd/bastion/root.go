package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bastion",
	Short: "Bastion - password-policy validation engine",
	Long: `Bastion validates candidate passwords against a configurable rule set
and reports structured, explainable results.

Rules include:
  - Allowed characters (the core policy: every character must belong
    to a configured set)
  - Forbidden characters and whitespace
  - Length bounds
  - Banned-word dictionaries (file or SQLite backed)

Results carry stable error codes (e.g. ALLOWED_CHAR, TOO_SHORT) and
ordered parameters, designed for downstream message resolution rather
than fixed phrasing.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "policy.yaml", "policy file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bastion-hq/bastion/pkg/cli"
	"bastion-hq/bastion/pkg/config"
	"bastion-hq/bastion/pkg/policy"
)

var lintFlags struct {
	file   string
	format string
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate a policy file",
	Long: `Validate a policy file without checking any password.

The lint command loads the file, applies defaults, validates every
field, and compiles the rule set (including opening any configured
dictionary backend), so a policy that lints cleanly will also load at
serve time.

Examples:
  # Lint the default policy file
  bastion lint

  # Lint a specific file, JSON output for CI
  bastion lint --file policy.yaml --format json`,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "policy file to validate (defaults to --config)")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
}

// LintResult is the outcome of validating one policy file.
type LintResult struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Rules  int      `json:"rules,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

func runLint(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(lintFlags.format)
	if err != nil {
		return err
	}

	file := lintFlags.file
	if file == "" {
		file = cfgFile
	}

	result := lintPolicyFile(file)

	if format == cli.FormatJSON {
		if err := cli.WriteJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	} else {
		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: policy OK (%d rules)\n", result.File, result.Rules)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "✗ %s: policy invalid\n", result.File)
			for _, msg := range result.Errors {
				fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", msg)
			}
		}
	}

	if !result.Valid {
		return fmt.Errorf("policy validation failed")
	}
	return nil
}

func lintPolicyFile(path string) LintResult {
	result := LintResult{File: path, Valid: true}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		result.Valid = false
		var validationErr config.ValidationError
		if errors.As(err, &validationErr) {
			for _, fieldErr := range validationErr.Errors {
				result.Errors = append(result.Errors, fieldErr.Error())
			}
		} else {
			result.Errors = append(result.Errors, err.Error())
		}
		return result
	}

	set, err := policy.Compile(&cfg.Policy)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	defer set.Close()

	result.Rules = len(set.Rules())
	return result
}

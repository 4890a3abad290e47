package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"bastion-hq/bastion/pkg/cli"
	"bastion-hq/bastion/pkg/config"
	"bastion-hq/bastion/pkg/policy"
	"bastion-hq/bastion/pkg/telemetry/logging"
)

var checkFlags struct {
	password string
	format   string
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a candidate password against the policy",
	Long: `Validate a candidate password against the configured rule set.

The candidate is taken from --password, or read from standard input when
the flag is absent. Every rule runs independently; the report lists each
rule's error codes, parameters, and metadata.

Examples:
  # Check a password given on the command line
  bastion check --config policy.yaml --password 'hunter2'

  # Read the candidate from stdin, emit a JSON report
  echo -n 'hunter2' | bastion check --format json`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFlags.password, "password", "p", "", "candidate password (reads stdin when omitted)")
	checkCmd.Flags().StringVar(&checkFlags.format, "format", "text", "output format: text, json")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(checkFlags.format)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	logger, err := logging.Setup(&cfg.Telemetry.Logging, os.Stderr)
	if err != nil {
		return err
	}

	set, err := policy.Compile(&cfg.Policy)
	if err != nil {
		return err
	}
	defer set.Close()

	password, err := candidatePassword(cmd.InOrStdin())
	if err != nil {
		return err
	}

	report := policy.Evaluate(set.Rules(), password)
	report.Policy = cfgFile

	logger.Debug("check complete",
		"rules", len(report.Results),
		"valid", report.Valid,
		"length", utf8.RuneCountInString(password),
	)

	if format == cli.FormatJSON {
		if err := cli.WriteJSON(cmd.OutOrStdout(), report); err != nil {
			return err
		}
	} else {
		printReport(cmd.OutOrStdout(), report)
	}

	if !report.Valid {
		return fmt.Errorf("password rejected by policy")
	}
	return nil
}

// candidatePassword returns the password under test: the flag value, or
// the first line of stdin with the trailing newline stripped.
func candidatePassword(stdin io.Reader) (string, error) {
	if checkFlags.password != "" {
		return checkFlags.password, nil
	}

	reader := bufio.NewReader(stdin)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read candidate from stdin: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", fmt.Errorf("no candidate password given (use --password or stdin)")
	}
	return line, nil
}

func printReport(w io.Writer, report *policy.Report) {
	fmt.Fprintf(w, "Report %s\n\n", report.ID)
	for _, res := range report.Results {
		mark := "✓"
		if !res.Valid {
			mark = "✗"
		}
		fmt.Fprintf(w, "%s %s\n", mark, res.Rule)
		for _, detail := range res.Errors {
			fmt.Fprintf(w, "    %s", detail.Code)
			for _, p := range detail.Params {
				fmt.Fprintf(w, " %s=%q", p.Name, p.Value)
			}
			fmt.Fprintln(w)
		}
		if res.Metadata != nil {
			fmt.Fprintf(w, "    %s count: %d\n", res.Metadata.Category, res.Metadata.Count)
		}
	}
	fmt.Fprintln(w)
	if report.Valid {
		fmt.Fprintln(w, "Password accepted")
	} else {
		fmt.Fprintln(w, "Password rejected")
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"bastion-hq/bastion/pkg/cli"
	"bastion-hq/bastion/pkg/config"
	"bastion-hq/bastion/pkg/policy"
	"bastion-hq/bastion/pkg/server"
	"bastion-hq/bastion/pkg/telemetry/logging"
	"bastion-hq/bastion/pkg/telemetry/metrics"
)

var serveFlags struct {
	listenAddress string
	logLevel      string
	noWatch       bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the validation HTTP server",
	Long: `Start the HTTP server that validates candidate passwords.

The server loads the policy file, watches it for changes, and applies
updates without a restart. Candidates are accepted on POST /v1/validate
and never logged or stored.

Examples:
  # Start with the default policy file
  bastion serve

  # Start with a custom policy and listen address
  bastion serve --config /etc/bastion/policy.yaml --listen 0.0.0.0:8343

  # Disable the policy file watcher
  bastion serve --no-watch`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
	serveCmd.Flags().StringVar(&serveFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&serveFlags.noWatch, "no-watch", false, "do not watch the policy file for changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return err
	}

	if serveFlags.listenAddress != "" {
		cfg.Server.ListenAddress = serveFlags.listenAddress
	}
	if serveFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = serveFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	logger, err := logging.Setup(&cfg.Telemetry.Logging, os.Stderr)
	if err != nil {
		return err
	}

	manager, err := policy.NewManager(cfgFile, logger)
	if err != nil {
		return err
	}
	defer manager.Close()

	var collector *metrics.Collector
	if *cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Telemetry.Metrics.Namespace, prometheus.NewRegistry())
		manager.OnReload(collector.RecordReload)
	}

	if !serveFlags.noWatch {
		watcher, err := policy.NewWatcher(manager, policy.DefaultDebounceInterval)
		if err != nil {
			return fmt.Errorf("failed to create policy watcher: %w", err)
		}
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("failed to start policy watcher: %w", err)
		}
		defer watcher.Stop()
		logger.Info("watching policy file", "path", cfgFile)
	}

	fmt.Printf("Bastion v%s\n", Version)
	fmt.Printf("✓ Policy loaded from %s (%d rules)\n", cfgFile, len(manager.Rules()))
	fmt.Printf("✓ Server listening on %s\n", cfg.Server.ListenAddress)
	fmt.Printf("✓ Health endpoint: http://%s/healthz\n", cfg.Server.ListenAddress)
	if collector != nil {
		fmt.Printf("✓ Metrics endpoint: http://%s/metrics\n", cfg.Server.ListenAddress)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	srv := server.NewServer(&cfg.Server, manager, collector)

	ctx := cli.SetupSignalHandler()
	if err := srv.Start(ctx); err != nil {
		return err
	}

	fmt.Println("✓ Server stopped")
	return nil
}

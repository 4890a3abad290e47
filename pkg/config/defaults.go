package config

import "time"

// Default configuration values.
const (
	DefaultAllowedCharacters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	DefaultMatchBehavior     = "contains"
	DefaultListenAddress     = "127.0.0.1:8343"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultMetricsNamespace  = "bastion"

	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 15 * time.Second
)

// ApplyDefaults fills in default values for fields left unset.
func ApplyDefaults(cfg *Config) {
	if cfg.Policy.Allowed.Characters == "" {
		cfg.Policy.Allowed.Characters = DefaultAllowedCharacters
	}
	if cfg.Policy.Allowed.MatchBehavior == "" {
		cfg.Policy.Allowed.MatchBehavior = DefaultMatchBehavior
	}
	if cfg.Policy.Allowed.ReportAll == nil {
		cfg.Policy.Allowed.ReportAll = boolPtr(true)
	}
	if cfg.Policy.Illegal.Characters != "" {
		if cfg.Policy.Illegal.MatchBehavior == "" {
			cfg.Policy.Illegal.MatchBehavior = DefaultMatchBehavior
		}
		if cfg.Policy.Illegal.ReportAll == nil {
			cfg.Policy.Illegal.ReportAll = boolPtr(true)
		}
	}
	if cfg.Policy.Whitespace.Enabled {
		if cfg.Policy.Whitespace.MatchBehavior == "" {
			cfg.Policy.Whitespace.MatchBehavior = DefaultMatchBehavior
		}
		if cfg.Policy.Whitespace.ReportAll == nil {
			cfg.Policy.Whitespace.ReportAll = boolPtr(true)
		}
	}

	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLogLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLogFormat
	}
	if cfg.Telemetry.Metrics.Enabled == nil {
		cfg.Telemetry.Metrics.Enabled = boolPtr(true)
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
}

// MinimalConfig returns a valid configuration with defaults applied,
// useful as a test fixture and as the fallback when no policy file is
// given.
func MinimalConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

func boolPtr(b bool) *bool {
	return &b
}

package config

import "time"

// Config is the root configuration for Bastion.
type Config struct {
	Policy    PolicyConfig    `yaml:"policy"`
	Server    ServerConfig    `yaml:"server"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// PolicyConfig describes the rule set applied to candidate passwords.
// A rule section left at its zero value is disabled, except for the
// allowed-character rule, which is the core of the policy and required.
type PolicyConfig struct {
	Allowed    AllowedConfig    `yaml:"allowed"`
	Illegal    IllegalConfig    `yaml:"illegal"`
	Whitespace WhitespaceConfig `yaml:"whitespace"`
	Length     LengthConfig     `yaml:"length"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
}

// AllowedConfig configures the allowed-character rule.
type AllowedConfig struct {
	// Characters is the set of permitted characters. Order and
	// duplicates are irrelevant; the set is sorted internally.
	Characters string `yaml:"characters"`

	// MatchBehavior is one of "contains", "starts_with", "ends_with".
	// Default: contains.
	MatchBehavior string `yaml:"match_behavior"`

	// ReportAll reports every distinct offending character instead of
	// stopping at the first. Default: true.
	ReportAll *bool `yaml:"report_all"`

	// EnhancedMessages suffixes error codes with the offending
	// character's decimal code point. Default: false.
	EnhancedMessages bool `yaml:"enhanced_messages"`
}

// IllegalConfig configures the forbidden-character rule. Empty
// Characters disables the rule.
type IllegalConfig struct {
	Characters       string `yaml:"characters"`
	MatchBehavior    string `yaml:"match_behavior"`
	ReportAll        *bool  `yaml:"report_all"`
	EnhancedMessages bool   `yaml:"enhanced_messages"`
}

// WhitespaceConfig configures the whitespace rule.
type WhitespaceConfig struct {
	Enabled       bool   `yaml:"enabled"`
	MatchBehavior string `yaml:"match_behavior"`
	ReportAll     *bool  `yaml:"report_all"`
}

// LengthConfig configures the length rule. Both bounds zero disables
// the rule; Max zero alone means unbounded.
type LengthConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// DictionaryConfig configures the banned-word rule. An empty Backend
// disables the rule.
type DictionaryConfig struct {
	// Backend is "file" or "sqlite".
	Backend string `yaml:"backend"`

	// Path is the word list file (file backend) or database file
	// (sqlite backend).
	Path string `yaml:"path"`

	// RefreshSchedule is a cron expression for reloading the file
	// backend. Empty means load once. Ignored by the sqlite backend.
	RefreshSchedule string `yaml:"refresh_schedule"`
}

// ServerConfig configures the optional validation HTTP server.
type ServerConfig struct {
	// ListenAddress is the host:port to bind. Default: 127.0.0.1:8343.
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout bounds the time spent reading a request.
	// Default: 10s.
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout bounds the time spent writing a response.
	// Default: 10s.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown. Default: 15s.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// TelemetryConfig groups observability settings.
type TelemetryConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error". Default: info.
	Level string `yaml:"level"`

	// Format is "json" or "text". Default: text.
	Format string `yaml:"format"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	// Enabled exposes metrics on the validation server. Default: true.
	Enabled *bool `yaml:"enabled"`

	// Namespace prefixes all metric names. Default: bastion.
	Namespace string `yaml:"namespace"`
}

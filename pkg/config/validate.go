package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field
	// (e.g., "policy.allowed.characters").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a
// configuration. All field errors are collected and returned together.
type ValidationError struct {
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// matchBehaviors are the accepted match_behavior values.
var matchBehaviors = map[string]bool{
	"contains":    true,
	"starts_with": true,
	"ends_with":   true,
}

// Validate validates the entire configuration and returns a
// ValidationError if any rule fails, nil otherwise.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validatePolicy(&cfg.Policy)...)
	errs = append(errs, validateServer(&cfg.Server)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validatePolicy(cfg *PolicyConfig) []FieldError {
	var errs []FieldError

	if cfg.Allowed.Characters == "" {
		errs = append(errs, FieldError{
			Field:   "policy.allowed.characters",
			Message: "field is required",
		})
	}
	if !matchBehaviors[cfg.Allowed.MatchBehavior] {
		errs = append(errs, FieldError{
			Field:   "policy.allowed.match_behavior",
			Message: fmt.Sprintf("unknown match behavior %q", cfg.Allowed.MatchBehavior),
		})
	}

	if cfg.Illegal.Characters != "" && !matchBehaviors[cfg.Illegal.MatchBehavior] {
		errs = append(errs, FieldError{
			Field:   "policy.illegal.match_behavior",
			Message: fmt.Sprintf("unknown match behavior %q", cfg.Illegal.MatchBehavior),
		})
	}

	if cfg.Whitespace.Enabled && !matchBehaviors[cfg.Whitespace.MatchBehavior] {
		errs = append(errs, FieldError{
			Field:   "policy.whitespace.match_behavior",
			Message: fmt.Sprintf("unknown match behavior %q", cfg.Whitespace.MatchBehavior),
		})
	}

	if cfg.Length.Min < 0 {
		errs = append(errs, FieldError{
			Field:   "policy.length.min",
			Message: "must not be negative",
		})
	}
	if cfg.Length.Max > 0 && cfg.Length.Max < cfg.Length.Min {
		errs = append(errs, FieldError{
			Field:   "policy.length.max",
			Message: "must not be below policy.length.min",
		})
	}

	switch cfg.Dictionary.Backend {
	case "", "file", "sqlite":
	default:
		errs = append(errs, FieldError{
			Field:   "policy.dictionary.backend",
			Message: fmt.Sprintf("unknown backend %q (expected file or sqlite)", cfg.Dictionary.Backend),
		})
	}
	if cfg.Dictionary.Backend != "" && cfg.Dictionary.Path == "" {
		errs = append(errs, FieldError{
			Field:   "policy.dictionary.path",
			Message: "field is required when a backend is configured",
		})
	}
	if cfg.Dictionary.RefreshSchedule != "" {
		if _, err := cron.ParseStandard(cfg.Dictionary.RefreshSchedule); err != nil {
			errs = append(errs, FieldError{
				Field:   "policy.dictionary.refresh_schedule",
				Message: fmt.Sprintf("invalid cron expression: %v", err),
			})
		}
	}

	return errs
}

func validateServer(cfg *ServerConfig) []FieldError {
	var errs []FieldError
	if cfg.ListenAddress == "" {
		errs = append(errs, FieldError{
			Field:   "server.listen_address",
			Message: "field is required",
		})
	}
	if cfg.ReadTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.read_timeout",
			Message: "must not be negative",
		})
	}
	if cfg.WriteTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.write_timeout",
			Message: "must not be negative",
		})
	}
	if cfg.ShutdownTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.shutdown_timeout",
			Message: "must not be negative",
		})
	}
	return errs
}

func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("unknown log level %q", cfg.Logging.Level),
		})
	}
	switch cfg.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("unknown log format %q", cfg.Logging.Format),
		})
	}

	return errs
}

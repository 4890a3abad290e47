// Package logging provides structured logging for Bastion, built on
// log/slog.
//
// New constructs a logger from configuration (level and json/text
// format). Loggers never receive password content; callers log event
// facts only (rule counts, error codes, durations).
package logging

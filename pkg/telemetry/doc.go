// Package telemetry groups Bastion's observability concerns.
//
// Subpackages:
//
//   - logging: structured logging built on log/slog
//   - metrics: Prometheus metrics for validations and policy reloads
//
// Telemetry observes events and counts, never content: candidate
// passwords and validation results are deliberately kept out of logs
// and metric labels.
package telemetry

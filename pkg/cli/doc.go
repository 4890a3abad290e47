// Package cli holds small helpers shared by the bastion commands:
// output formatting (text and JSON) and signal-aware contexts for the
// long-running serve command.
package cli

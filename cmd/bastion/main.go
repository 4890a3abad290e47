// Bastion is a password-policy validation engine.
//
// It checks candidate passwords against a configurable rule set (an
// allowed character set at its core, optionally joined by forbidden
// characters, whitespace and length constraints, and a banned-word
// dictionary) and reports structured, machine-consumable results with
// stable error codes.
//
// Usage:
//
//	# Check a password against the policy
//	bastion check --config policy.yaml --password 'hunter2'
//
//	# Read the candidate from stdin, emit a JSON report
//	echo -n 'hunter2' | bastion check --format json
//
//	# Validate a policy file
//	bastion lint --file policy.yaml
//
//	# Run the validation HTTP server with live policy reload
//	bastion serve --config policy.yaml
//
//	# Show version information
//	bastion version
package main

func main() {
	Execute()
}

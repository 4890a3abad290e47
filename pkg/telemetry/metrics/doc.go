// Package metrics provides Prometheus metrics for Bastion.
//
// The Collector records validation events and policy reloads:
//
//   - bastion_validations_total{outcome}: completed validations, labeled
//     pass or fail
//   - bastion_rule_failures_total{code}: rule failures by base error code
//   - bastion_password_length: histogram of candidate lengths in runes
//   - bastion_policy_reloads_total{outcome}: policy reload attempts
//
// Failure codes are recorded with any enhanced per-character suffix
// stripped, keeping label cardinality bounded by the rule set rather
// than by the character space. Password content never reaches a label.
package metrics

// Package policy compiles validation rule sets from configuration and
// keeps them fresh.
//
// Compile turns a config.PolicyConfig into a RuleSet: the ordered rules
// to run against a candidate password, plus the resources (word stores,
// refreshers) that back them. A Manager holds the current rule set behind
// an atomic pointer and swaps in a new one when the policy file is
// reloaded; a Watcher drives reloads from filesystem events with
// debouncing, so editing the policy file takes effect without a restart.
//
// The library deliberately stops at compiling and running individual
// rules. How rule outcomes combine into an accept/reject decision is the
// caller's policy, not this package's.
package policy

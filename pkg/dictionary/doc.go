// Package dictionary provides banned-word stores backing the dictionary
// rule.
//
// Two backends are available:
//
//   - Store: an immutable in-memory word list loaded from a
//     newline-delimited file or reader, with binary-search lookups
//   - SQLiteStore: a SQLite database of banned words, suitable for lists
//     too large to hold in memory
//
// A Refresher wraps the file-backed store and reloads it on a cron
// schedule, so updated breach lists are picked up without a restart.
// All stores satisfy the rule.WordStore contract and are safe for
// concurrent lookups.
package dictionary

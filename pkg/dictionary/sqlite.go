package dictionary

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// schema holds the banned-word table. The word itself is the primary
// key, so lookups are a single index probe.
const schema = `
CREATE TABLE IF NOT EXISTS banned_words (
	word TEXT PRIMARY KEY
) WITHOUT ROWID;
`

// SQLiteConfig contains configuration for the SQLite word store.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// MaxOpenConns is the maximum number of open connections.
	// Default: 4
	MaxOpenConns int

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns the default SQLite store configuration.
func DefaultSQLiteConfig() *SQLiteConfig {
	return &SQLiteConfig{
		Path:         "data/banned_words.db",
		MaxOpenConns: 4,
		BusyTimeout:  5 * time.Second,
	}
}

// SQLiteStore looks up banned words in a SQLite database. Validation
// only ever reads; Add exists for seeding and list maintenance.
type SQLiteStore struct {
	db     *sql.DB
	lookup *sql.Stmt
	logger *slog.Logger
}

// OpenSQLite opens (creating if necessary) a SQLite-backed word store.
func OpenSQLite(config *SQLiteConfig) (*SQLiteStore, error) {
	if config == nil {
		config = DefaultSQLiteConfig()
	}

	logger := slog.Default().With("component", "dictionary.sqlite")

	db, err := sql.Open("sqlite3", config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word database %q: %w", config.Path, err)
	}
	db.SetMaxOpenConns(config.MaxOpenConns)

	if _, err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", config.BusyTimeout.Milliseconds())); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize word schema: %w", err)
	}

	lookup, err := db.Prepare("SELECT 1 FROM banned_words WHERE word = ?")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare lookup statement: %w", err)
	}

	logger.Info("SQLite word store opened", "path", config.Path)

	return &SQLiteStore{db: db, lookup: lookup, logger: logger}, nil
}

// Contains reports whether word is in the store. Lookup failures other
// than no-rows are logged and treated as absent, keeping validation
// infallible at the rule boundary.
func (s *SQLiteStore) Contains(word string) bool {
	var one int
	err := s.lookup.QueryRow(word).Scan(&one)
	switch err {
	case nil:
		return true
	case sql.ErrNoRows:
		return false
	default:
		s.logger.Error("word lookup failed", "error", err)
		return false
	}
}

// Add inserts words into the store, ignoring ones already present.
func (s *SQLiteStore) Add(words ...string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.Prepare("INSERT OR IGNORE INTO banned_words (word) VALUES (?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, word := range words {
		if _, err := stmt.Exec(word); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert word: %w", err)
		}
	}
	return tx.Commit()
}

// Count returns the number of stored words.
func (s *SQLiteStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM banned_words").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return n, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	s.lookup.Close()
	return s.db.Close()
}

package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Store is an immutable, sorted in-memory word list with binary-search
// lookups. It mirrors the character-set membership strategy of the rule
// engine: sort once at construction, search logarithmically, never
// mutate. Safe for concurrent use.
type Store struct {
	words []string
}

// New builds a store from words. The input is copied and sorted;
// duplicates are harmless.
func New(words []string) *Store {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)
	return &Store{words: sorted}
}

// FromReader builds a store from newline-delimited words. Blank lines
// and lines starting with '#' are skipped; surrounding whitespace is
// trimmed.
func FromReader(r io.Reader) (*Store, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return New(words), nil
}

// FromFile builds a store from a newline-delimited word list file.
func FromFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %q: %w", path, err)
	}
	defer f.Close()

	store, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %q: %w", path, err)
	}
	return store, nil
}

// Contains reports whether word is in the list.
func (s *Store) Contains(word string) bool {
	i := sort.SearchStrings(s.words, word)
	return i < len(s.words) && s.words[i] == word
}

// Len returns the number of stored words, duplicates included.
func (s *Store) Len() int {
	return len(s.words)
}

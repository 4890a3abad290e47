package rule

import "sort"

// CharacterSet is an immutable, sorted collection of runes with
// logarithmic membership tests. The backing slice is sorted once at
// construction and never mutated afterwards, so a set is safe for
// concurrent use.
//
// A sorted slice with binary search is a deliberate choice over a hash
// set: the sets are small, construction is a single O(n log n) sort, and
// lookups are allocation-free and deterministic.
type CharacterSet struct {
	chars []rune
}

// NewCharacterSet builds a set from chars. The input is copied and sorted
// internally; callers may pass elements in any order. Duplicates are
// tolerated, since only membership is ever tested. An empty input is a
// configuration error.
func NewCharacterSet(chars []rune) (*CharacterSet, error) {
	if len(chars) == 0 {
		return nil, &ConfigurationError{Reason: "character set must not be empty"}
	}
	sorted := make([]rune, len(chars))
	copy(sorted, chars)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return &CharacterSet{chars: sorted}, nil
}

// Contains reports whether r is a member of the set. Binary search over
// the sorted backing slice, O(log n).
func (s *CharacterSet) Contains(r rune) bool {
	i := sort.Search(len(s.chars), func(i int) bool { return s.chars[i] >= r })
	return i < len(s.chars) && s.chars[i] == r
}

// Count returns how many runes of text are members of the set.
func (s *CharacterSet) Count(text string) int {
	n := 0
	for _, r := range text {
		if s.Contains(r) {
			n++
		}
	}
	return n
}

// Runes returns a copy of the sorted backing runes.
func (s *CharacterSet) Runes() []rune {
	out := make([]rune, len(s.chars))
	copy(out, s.chars)
	return out
}

// Len returns the number of stored runes, duplicates included.
func (s *CharacterSet) Len() int {
	return len(s.chars)
}

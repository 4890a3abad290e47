package rule

import (
	"strings"
	"unicode/utf8"
)

// MatchBehavior decides where in the password a character must occur to
// count as a match. Contains, the default, matches anywhere; the anchored
// variants only match at a boundary position.
//
// Character rules query the behavior only for characters that already
// failed the set-membership test, and never query Contains at all: a
// character outside the allowed set has, by definition, been found
// somewhere in the password.
type MatchBehavior interface {
	// Match reports whether c occurs in text at a position this
	// behavior accepts.
	Match(text string, c rune) bool

	// String returns the behavior's name for error parameters and logs.
	String() string
}

// The closed set of behaviors.
var (
	// Contains matches a character anywhere in the password.
	Contains MatchBehavior = containsBehavior{}
	// StartsWith matches only the first character of the password.
	StartsWith MatchBehavior = startsWithBehavior{}
	// EndsWith matches only the last character of the password.
	EndsWith MatchBehavior = endsWithBehavior{}
)

type containsBehavior struct{}

func (containsBehavior) Match(text string, c rune) bool {
	return strings.ContainsRune(text, c)
}

func (containsBehavior) String() string { return "contains" }

type startsWithBehavior struct{}

func (startsWithBehavior) Match(text string, c rune) bool {
	r, size := utf8.DecodeRuneInString(text)
	return size > 0 && r == c
}

func (startsWithBehavior) String() string { return "starts with" }

type endsWithBehavior struct{}

func (endsWithBehavior) Match(text string, c rune) bool {
	r, size := utf8.DecodeLastRuneInString(text)
	return size > 0 && r == c
}

func (endsWithBehavior) String() string { return "ends with" }

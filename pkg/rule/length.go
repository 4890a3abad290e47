package rule

import (
	"strconv"
	"unicode/utf8"
)

// Error codes reported by LengthRule.
const (
	TooShortCode = "TOO_SHORT"
	TooLongCode  = "TOO_LONG"
)

// LengthRule fails validation when the password's length in runes falls
// outside the configured bounds. A zero maximum means unbounded.
type LengthRule struct {
	min int
	max int
}

// NewLengthRule builds a length rule with the given bounds. A negative
// minimum, or a maximum below the minimum, is a configuration error.
func NewLengthRule(min, max int) (*LengthRule, error) {
	if min < 0 {
		return nil, &ConfigurationError{Reason: "minimum length must not be negative"}
	}
	if max > 0 && max < min {
		return nil, &ConfigurationError{Reason: "maximum length must not be below minimum length"}
	}
	return &LengthRule{min: min, max: max}, nil
}

// MinimumLength returns the lower bound.
func (r *LengthRule) MinimumLength() int { return r.min }

// MaximumLength returns the upper bound; zero means unbounded.
func (r *LengthRule) MaximumLength() int { return r.max }

// Validate checks the rune length of the password against the bounds.
// Both bounds are reported as parameters either way, so a resolver can
// phrase the full requirement. The result carries a Length metadata
// count equal to the password's rune length.
func (r *LengthRule) Validate(password string) *Result {
	result := NewResult()
	length := utf8.RuneCountInString(password)

	params := []Param{
		{Name: "minimumLength", Value: strconv.Itoa(r.min)},
		{Name: "maximumLength", Value: strconv.Itoa(r.max)},
	}
	if length < r.min {
		result.AddError(TooShortCode, params...)
	} else if r.max > 0 && length > r.max {
		result.AddError(TooLongCode, params...)
	}

	result.SetMetadata(CountLength, length)
	return result
}

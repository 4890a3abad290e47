package rule

import "strconv"

// AllowedCharacterCode is the error code reported when the password
// contains a character outside the allowed set. With enhanced error
// messages the code carries the offending character's decimal code point
// as a suffix, e.g. "ALLOWED_CHAR.33" for '!'.
const AllowedCharacterCode = "ALLOWED_CHAR"

// AllowedCharacterRule fails validation unless the password contains only
// characters from a fixed allowed set. The rule is immutable after
// construction; each Validate call allocates only call-local state.
type AllowedCharacterRule struct {
	allowed *CharacterSet
	opts    characterRuleOptions
}

// NewAllowedCharacterRule builds a rule from the allowed characters.
// The characters are sorted internally and may arrive in any order;
// duplicates are harmless. An empty set is a configuration error.
//
// Defaults: Contains behavior, report all failures, plain error codes.
func NewAllowedCharacterRule(allowed []rune, opts ...CharacterRuleOption) (*AllowedCharacterRule, error) {
	set, err := NewCharacterSet(allowed)
	if err != nil {
		return nil, err
	}
	o := defaultCharacterRuleOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &AllowedCharacterRule{allowed: set, opts: o}, nil
}

// AllowedCharacters returns the sorted allowed characters.
func (r *AllowedCharacterRule) AllowedCharacters() []rune {
	return r.allowed.Runes()
}

// MatchBehavior returns the active match behavior.
func (r *AllowedCharacterRule) MatchBehavior() MatchBehavior {
	return r.opts.behavior
}

// Validate scans the password in order and reports each distinct
// character outside the allowed set, or only the first one in
// report-first mode. The result always carries an Allowed metadata count
// computed over the full password, regardless of early termination.
func (r *AllowedCharacterRule) Validate(password string) *Result {
	result := NewResult()
	reported := make(map[rune]struct{})

	for _, c := range password {
		if r.allowed.Contains(c) {
			continue
		}
		if _, seen := reported[c]; seen {
			continue
		}
		// Contains is already established by non-membership; only the
		// anchored behaviors need the positional check.
		if r.opts.behavior != Contains && !r.opts.behavior.Match(password, c) {
			continue
		}
		result.AddError(characterCode(AllowedCharacterCode, c, r.opts.enhanced),
			Param{Name: "illegalCharacter", Value: string(c)},
			Param{Name: "matchBehavior", Value: r.opts.behavior.String()},
		)
		if !r.opts.reportAll {
			break
		}
		reported[c] = struct{}{}
	}

	result.SetMetadata(CountAllowed, r.allowed.Count(password))
	return result
}

// characterCode returns base, or base suffixed with c's decimal code
// point when enhanced codes are on.
func characterCode(base string, c rune, enhanced bool) string {
	if !enhanced {
		return base
	}
	return base + "." + strconv.Itoa(int(c))
}

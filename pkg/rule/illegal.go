package rule

// IllegalCharacterCode is the error code reported when the password
// contains a forbidden character. The enhanced form appends the
// character's decimal code point, e.g. "ILLEGAL_CHAR.36" for '$'.
const IllegalCharacterCode = "ILLEGAL_CHAR"

// IllegalCharacterRule fails validation when the password contains any
// character from a forbidden set. It is the dual of AllowedCharacterRule
// and shares its scanning machinery: in-order scan, per-call
// deduplication, match-behavior filtering, optional report-first mode.
type IllegalCharacterRule struct {
	illegal *CharacterSet
	opts    characterRuleOptions
}

// NewIllegalCharacterRule builds a rule from the forbidden characters.
// An empty set is a configuration error.
func NewIllegalCharacterRule(illegal []rune, opts ...CharacterRuleOption) (*IllegalCharacterRule, error) {
	set, err := NewCharacterSet(illegal)
	if err != nil {
		return nil, err
	}
	o := defaultCharacterRuleOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &IllegalCharacterRule{illegal: set, opts: o}, nil
}

// IllegalCharacters returns the sorted forbidden characters.
func (r *IllegalCharacterRule) IllegalCharacters() []rune {
	return r.illegal.Runes()
}

// MatchBehavior returns the active match behavior.
func (r *IllegalCharacterRule) MatchBehavior() MatchBehavior {
	return r.opts.behavior
}

// Validate reports each distinct forbidden character present in the
// password. The result carries an Illegal metadata count over the full
// password.
func (r *IllegalCharacterRule) Validate(password string) *Result {
	result := NewResult()
	reported := make(map[rune]struct{})

	for _, c := range password {
		if !r.illegal.Contains(c) {
			continue
		}
		if _, seen := reported[c]; seen {
			continue
		}
		if r.opts.behavior != Contains && !r.opts.behavior.Match(password, c) {
			continue
		}
		result.AddError(characterCode(IllegalCharacterCode, c, r.opts.enhanced),
			Param{Name: "illegalCharacter", Value: string(c)},
			Param{Name: "matchBehavior", Value: r.opts.behavior.String()},
		)
		if !r.opts.reportAll {
			break
		}
		reported[c] = struct{}{}
	}

	result.SetMetadata(CountIllegal, r.illegal.Count(password))
	return result
}

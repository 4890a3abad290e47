package rule

import "unicode"

// WhitespaceCode is the error code reported when the password contains
// whitespace.
const WhitespaceCode = "ILLEGAL_WHITESPACE"

// WhitespaceRule fails validation when the password contains whitespace
// characters, as classified by unicode.IsSpace. It honors match behaviors
// and report-first mode the same way the character-set rules do.
type WhitespaceRule struct {
	opts characterRuleOptions
}

// NewWhitespaceRule builds a whitespace rule. It cannot fail: the
// forbidden class is fixed, so there is no configuration to get wrong.
func NewWhitespaceRule(opts ...CharacterRuleOption) *WhitespaceRule {
	o := defaultCharacterRuleOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &WhitespaceRule{opts: o}
}

// MatchBehavior returns the active match behavior.
func (r *WhitespaceRule) MatchBehavior() MatchBehavior {
	return r.opts.behavior
}

// Validate reports each distinct whitespace character in the password.
// The result carries a Whitespace metadata count over the full password.
func (r *WhitespaceRule) Validate(password string) *Result {
	result := NewResult()
	reported := make(map[rune]struct{})

	for _, c := range password {
		if !unicode.IsSpace(c) {
			continue
		}
		if _, seen := reported[c]; seen {
			continue
		}
		if r.opts.behavior != Contains && !r.opts.behavior.Match(password, c) {
			continue
		}
		result.AddError(characterCode(WhitespaceCode, c, r.opts.enhanced),
			Param{Name: "whitespaceCharacter", Value: string(c)},
			Param{Name: "matchBehavior", Value: r.opts.behavior.String()},
		)
		if !r.opts.reportAll {
			break
		}
		reported[c] = struct{}{}
	}

	count := 0
	for _, c := range password {
		if unicode.IsSpace(c) {
			count++
		}
	}
	result.SetMetadata(CountWhitespace, count)
	return result
}

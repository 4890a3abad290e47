package rule

// characterRuleOptions are the settings shared by the character-scanning
// rules. All of them are fixed at construction time.
type characterRuleOptions struct {
	behavior  MatchBehavior
	reportAll bool
	enhanced  bool
}

func defaultCharacterRuleOptions() characterRuleOptions {
	return characterRuleOptions{
		behavior:  Contains,
		reportAll: true,
	}
}

// CharacterRuleOption adjusts how a character rule scans and reports.
type CharacterRuleOption func(*characterRuleOptions)

// WithMatchBehavior sets where in the password a character must occur to
// be flagged. A nil behavior leaves the default (Contains) in place.
func WithMatchBehavior(b MatchBehavior) CharacterRuleOption {
	return func(o *characterRuleOptions) {
		if b != nil {
			o.behavior = b
		}
	}
}

// WithReportFirst stops the scan at the first qualifying violation, so
// the result carries at most one error.
func WithReportFirst() CharacterRuleOption {
	return func(o *characterRuleOptions) {
		o.reportAll = false
	}
}

// WithEnhancedErrorMessages suffixes error codes with the offending
// character's decimal code point, letting a message resolver pick
// per-character messages.
func WithEnhancedErrorMessages() CharacterRuleOption {
	return func(o *characterRuleOptions) {
		o.enhanced = true
	}
}

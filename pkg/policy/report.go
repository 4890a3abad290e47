package policy

import (
	"fmt"

	"github.com/google/uuid"

	"bastion-hq/bastion/pkg/rule"
)

// Report is the outcome of checking one candidate password.
type Report struct {
	ID      string       `json:"id"`
	Policy  string       `json:"policy,omitempty"`
	Valid   bool         `json:"valid"`
	Results []RuleReport `json:"results"`
}

// RuleReport is one rule's contribution to a report.
type RuleReport struct {
	Rule     string             `json:"rule"`
	Valid    bool               `json:"valid"`
	Errors   []rule.ErrorDetail `json:"errors,omitempty"`
	Metadata *rule.Metadata     `json:"metadata,omitempty"`
}

// Evaluate validates the candidate against each rule independently and
// assembles a report. Acceptance here is presentation only: a candidate
// passes when no rule reported an error.
func Evaluate(rules []rule.Rule, password string) *Report {
	report := &Report{
		ID:    uuid.NewString(),
		Valid: true,
	}
	for _, r := range rules {
		result := r.Validate(password)
		report.Results = append(report.Results, RuleReport{
			Rule:     RuleName(r),
			Valid:    result.Valid(),
			Errors:   result.Errors,
			Metadata: result.Metadata,
		})
		if !result.Valid() {
			report.Valid = false
		}
	}
	return report
}

// RuleResults extracts the raw rule results from a report for metric
// recording.
func (r *Report) RuleResults() []*rule.Result {
	results := make([]*rule.Result, 0, len(r.Results))
	for _, res := range r.Results {
		results = append(results, &rule.Result{
			Errors:   res.Errors,
			Metadata: res.Metadata,
		})
	}
	return results
}

// RuleName labels a rule for report output.
func RuleName(r rule.Rule) string {
	switch r.(type) {
	case *rule.AllowedCharacterRule:
		return "allowed_characters"
	case *rule.IllegalCharacterRule:
		return "illegal_characters"
	case *rule.WhitespaceRule:
		return "whitespace"
	case *rule.LengthRule:
		return "length"
	case *rule.DictionaryRule:
		return "dictionary"
	default:
		return fmt.Sprintf("%T", r)
	}
}

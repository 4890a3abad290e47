package rule

// CountCategory labels the statistic carried by a result's metadata.
type CountCategory string

const (
	// CountAllowed counts characters belonging to the allowed set.
	CountAllowed CountCategory = "Allowed"
	// CountIllegal counts characters belonging to the forbidden set.
	CountIllegal CountCategory = "Illegal"
	// CountWhitespace counts whitespace characters.
	CountWhitespace CountCategory = "Whitespace"
	// CountLength counts the characters of the password.
	CountLength CountCategory = "Length"
)

// Param is one named value attached to an error detail. Parameter order
// is significant for downstream message formatting, so details carry a
// slice of pairs rather than a map.
type Param struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ErrorDetail records a single validation failure: a stable
// machine-readable code plus ordered parameters for an external message
// resolver. The engine decides facts only; phrasing belongs to the
// resolver.
type ErrorDetail struct {
	Code   string  `json:"code"`
	Params []Param `json:"params,omitempty"`
}

// Param returns the value of the named parameter and whether it is set.
func (d ErrorDetail) Param(name string) (string, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Metadata carries one statistic about the validated password. It is an
// independent measurement, not tied to the pass/fail outcome.
type Metadata struct {
	Category CountCategory `json:"category"`
	Count    int           `json:"count"`
}

// Result accumulates the outcome of one rule validation. Errors keep
// first-detection order. A fresh Result is created per validation and is
// owned solely by the caller after return.
type Result struct {
	Errors   []ErrorDetail `json:"errors"`
	Metadata *Metadata     `json:"metadata,omitempty"`
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{}
}

// Valid reports whether the password passed the rule.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// AddError appends one failure record, preserving parameter order.
func (r *Result) AddError(code string, params ...Param) {
	r.Errors = append(r.Errors, ErrorDetail{Code: code, Params: params})
}

// SetMetadata attaches the result statistic, replacing any previous one.
func (r *Result) SetMetadata(category CountCategory, count int) {
	r.Metadata = &Metadata{Category: category, Count: count}
}

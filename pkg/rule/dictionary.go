package rule

// IllegalWordCode is the error code reported when the password appears in
// a banned-word store.
const IllegalWordCode = "ILLEGAL_WORD"

// WordStore answers membership queries for a banned-word list. Stores
// must be safe for concurrent lookups; the in-repo implementations live
// in pkg/dictionary.
type WordStore interface {
	Contains(word string) bool
}

// DictionaryRule fails validation when the password itself is a banned
// word, typically one drawn from a breach corpus or a common-password
// list.
type DictionaryRule struct {
	store WordStore
}

// NewDictionaryRule builds a dictionary rule backed by store. A nil
// store is a configuration error.
func NewDictionaryRule(store WordStore) (*DictionaryRule, error) {
	if store == nil {
		return nil, &ConfigurationError{Reason: "word store must not be nil"}
	}
	return &DictionaryRule{store: store}, nil
}

// Validate checks the password against the banned-word store. No
// metadata is computed; the lookup yields no independent statistic.
func (r *DictionaryRule) Validate(password string) *Result {
	result := NewResult()
	if r.store.Contains(password) {
		result.AddError(IllegalWordCode,
			Param{Name: "matchingWord", Value: password},
		)
	}
	return result
}

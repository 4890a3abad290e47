package rule

// Rule validates one property of a candidate password and reports the
// outcome as a Result. Validation never fails with a Go error; a result
// with no error details means the password passes the rule.
//
// Implementations must be immutable after construction so one instance
// can serve concurrent validations.
type Rule interface {
	Validate(password string) *Result
}

// ConfigurationError reports an invalid rule configuration detected at
// construction time. A rule that would return a ConfigurationError is
// never built.
type ConfigurationError struct {
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return "invalid rule configuration: " + e.Reason
}

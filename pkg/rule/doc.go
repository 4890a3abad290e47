// Package rule implements the password validation rules at the core of
// Bastion.
//
// Each rule checks one property of a candidate password and reports the
// outcome as data: a Result carrying zero or more error details (a stable
// machine-readable code plus ordered parameters) and an optional metadata
// statistic. A password passes a rule when its result holds no errors.
// Rules never signal validation failure through Go errors; the only
// fallible step is construction, which rejects invalid configuration.
//
// # Rules
//
// The package provides the following rules, all satisfying the Rule
// interface:
//
//   - AllowedCharacterRule: the password may contain only characters from
//     a fixed allowed set (error code ALLOWED_CHAR)
//   - IllegalCharacterRule: the password may not contain any character
//     from a forbidden set (error code ILLEGAL_CHAR)
//   - WhitespaceRule: the password may not contain whitespace
//     (error code ILLEGAL_WHITESPACE)
//   - LengthRule: the password length must fall within bounds
//     (error codes TOO_SHORT, TOO_LONG)
//   - DictionaryRule: the password may not appear in a banned-word store
//     (error code ILLEGAL_WORD)
//
// # Match behaviors
//
// Character rules accept a MatchBehavior controlling where in the password
// a character must occur to be flagged. Contains, the default, matches a
// character anywhere; StartsWith and EndsWith only flag characters sitting
// at the corresponding boundary.
//
// # Error codes and parameters
//
// Error codes are a stable contract for downstream message resolution.
// When enhanced error messages are enabled, character rules suffix the
// code with the offending character's decimal code point ("ALLOWED_CHAR.33"
// for '!') so resolvers can pick per-character messages. Parameters keep
// insertion order; character rules always insert the offending character
// first and the active match behavior second.
//
// # Concurrency
//
// Every rule is immutable after construction and allocates only
// call-local state during validation, so a single instance can be shared
// across concurrent validations without locking.
//
// Example:
//
//	r, err := rule.NewAllowedCharacterRule([]rune("abcdefghijklmnopqrstuvwxyz"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result := r.Validate("hunter2")
//	if !result.Valid() {
//	    for _, detail := range result.Errors {
//	        fmt.Println(detail.Code)
//	    }
//	}
package rule

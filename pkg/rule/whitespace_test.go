package rule

import "testing"

func TestWhitespaceRule_CleanPassword(t *testing.T) {
	r := NewWhitespaceRule()

	result := r.Validate("hunter2")
	if !result.Valid() {
		t.Errorf("expected valid result, got errors %+v", result.Errors)
	}
	if result.Metadata == nil || result.Metadata.Category != CountWhitespace {
		t.Fatal("expected Whitespace metadata to be present")
	}
	if result.Metadata.Count != 0 {
		t.Errorf("metadata count = %d, want 0", result.Metadata.Count)
	}
}

func TestWhitespaceRule_DistinctWhitespace(t *testing.T) {
	r := NewWhitespaceRule()

	// Space twice, tab once: two distinct whitespace characters.
	result := r.Validate("a b\tc d")
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(result.Errors))
	}
	if result.Errors[0].Code != "ILLEGAL_WHITESPACE" {
		t.Errorf("code = %q, want ILLEGAL_WHITESPACE", result.Errors[0].Code)
	}
	if got, _ := result.Errors[0].Param("whitespaceCharacter"); got != " " {
		t.Errorf("first whitespaceCharacter = %q, want space", got)
	}
	if got, _ := result.Errors[1].Param("whitespaceCharacter"); got != "\t" {
		t.Errorf("second whitespaceCharacter = %q, want tab", got)
	}
	if result.Metadata.Count != 3 {
		t.Errorf("metadata count = %d, want 3 (every occurrence)", result.Metadata.Count)
	}
}

func TestWhitespaceRule_ReportFirst(t *testing.T) {
	r := NewWhitespaceRule(WithReportFirst())

	result := r.Validate("a b\tc")
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(result.Errors))
	}
	if result.Metadata.Count != 2 {
		t.Errorf("metadata count = %d, want 2 despite early termination", result.Metadata.Count)
	}
}

func TestWhitespaceRule_AnchoredBehavior(t *testing.T) {
	r := NewWhitespaceRule(WithMatchBehavior(StartsWith))

	if result := r.Validate(" ab"); result.Valid() {
		t.Error("leading space should match StartsWith")
	}
	if result := r.Validate("a b"); !result.Valid() {
		t.Error("inner space should not match StartsWith")
	}
}

func TestWhitespaceRule_EnhancedErrorCodes(t *testing.T) {
	r := NewWhitespaceRule(WithEnhancedErrorMessages())

	result := r.Validate("a b")
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(result.Errors))
	}
	if result.Errors[0].Code != "ILLEGAL_WHITESPACE.32" {
		t.Errorf("code = %q, want ILLEGAL_WHITESPACE.32", result.Errors[0].Code)
	}
}

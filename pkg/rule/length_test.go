package rule

import (
	"errors"
	"testing"
)

func TestNewLengthRule_Invalid(t *testing.T) {
	tests := []struct {
		name string
		min  int
		max  int
	}{
		{"negative minimum", -1, 0},
		{"maximum below minimum", 8, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLengthRule(tt.min, tt.max)
			if err == nil {
				t.Fatal("expected construction to fail")
			}
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %T", err)
			}
		})
	}
}

func TestLengthRule_Validate(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		password string
		wantCode string // empty means valid
		wantLen  int
	}{
		{"within bounds", 4, 12, "hunter2", "", 7},
		{"too short", 8, 0, "abc", "TOO_SHORT", 3},
		{"too long", 0, 4, "abcdef", "TOO_LONG", 6},
		{"at minimum", 3, 8, "abc", "", 3},
		{"at maximum", 3, 8, "abcdefgh", "", 8},
		{"unbounded maximum", 1, 0, "aaaaaaaaaaaaaaaaaaaaaaaa", "", 24},
		{"runes not bytes", 4, 0, "ééé", "TOO_SHORT", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewLengthRule(tt.min, tt.max)
			if err != nil {
				t.Fatalf("unexpected construction error: %v", err)
			}

			result := r.Validate(tt.password)
			if tt.wantCode == "" {
				if !result.Valid() {
					t.Errorf("expected valid result, got errors %+v", result.Errors)
				}
			} else {
				if len(result.Errors) != 1 {
					t.Fatalf("expected 1 error, got %d", len(result.Errors))
				}
				if result.Errors[0].Code != tt.wantCode {
					t.Errorf("code = %q, want %q", result.Errors[0].Code, tt.wantCode)
				}
			}
			if result.Metadata == nil || result.Metadata.Category != CountLength {
				t.Fatal("expected Length metadata to be present")
			}
			if result.Metadata.Count != tt.wantLen {
				t.Errorf("metadata count = %d, want %d", result.Metadata.Count, tt.wantLen)
			}
		})
	}
}

func TestLengthRule_Parameters(t *testing.T) {
	r, err := NewLengthRule(8, 64)
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}

	result := r.Validate("abc")
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(result.Errors))
	}
	if got, _ := result.Errors[0].Param("minimumLength"); got != "8" {
		t.Errorf("minimumLength = %q, want 8", got)
	}
	if got, _ := result.Errors[0].Param("maximumLength"); got != "64" {
		t.Errorf("maximumLength = %q, want 64", got)
	}
}

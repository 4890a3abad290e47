package config

import (
	"strings"
	"testing"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := MinimalConfig()

	if err := Validate(cfg); err != nil {
		t.Errorf("expected valid config to pass validation, got error: %v", err)
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := &Config{}
	// No defaults applied: allowed characters, behavior, listen address,
	// log level and format are all missing.

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	validationErr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(validationErr.Errors) < 2 {
		t.Errorf("expected multiple errors, got %d", len(validationErr.Errors))
	}
	if !strings.Contains(validationErr.Error(), "validation failed with") {
		t.Errorf("error message should mention multiple errors: %s", validationErr.Error())
	}
}

func TestValidate_PolicyFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "empty allowed characters",
			mutate:    func(c *Config) { c.Policy.Allowed.Characters = "" },
			wantField: "policy.allowed.characters",
		},
		{
			name:      "unknown allowed behavior",
			mutate:    func(c *Config) { c.Policy.Allowed.MatchBehavior = "around" },
			wantField: "policy.allowed.match_behavior",
		},
		{
			name: "unknown illegal behavior",
			mutate: func(c *Config) {
				c.Policy.Illegal.Characters = "$%"
				c.Policy.Illegal.MatchBehavior = "nowhere"
			},
			wantField: "policy.illegal.match_behavior",
		},
		{
			name:      "negative minimum length",
			mutate:    func(c *Config) { c.Policy.Length.Min = -1 },
			wantField: "policy.length.min",
		},
		{
			name: "maximum below minimum",
			mutate: func(c *Config) {
				c.Policy.Length.Min = 12
				c.Policy.Length.Max = 8
			},
			wantField: "policy.length.max",
		},
		{
			name:      "unknown dictionary backend",
			mutate:    func(c *Config) { c.Policy.Dictionary = DictionaryConfig{Backend: "redis", Path: "x"} },
			wantField: "policy.dictionary.backend",
		},
		{
			name:      "dictionary backend without path",
			mutate:    func(c *Config) { c.Policy.Dictionary = DictionaryConfig{Backend: "file"} },
			wantField: "policy.dictionary.path",
		},
		{
			name: "invalid refresh schedule",
			mutate: func(c *Config) {
				c.Policy.Dictionary = DictionaryConfig{
					Backend:         "file",
					Path:            "words.txt",
					RefreshSchedule: "whenever",
				}
			},
			wantField: "policy.dictionary.refresh_schedule",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := MinimalConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation to fail")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("error %q does not mention field %q", err.Error(), tt.wantField)
			}
		})
	}
}

func TestValidate_TelemetryFields(t *testing.T) {
	cfg := MinimalConfig()
	cfg.Telemetry.Logging.Level = "loud"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation to fail")
	}
	if !strings.Contains(err.Error(), "telemetry.logging.level") {
		t.Errorf("error %q does not mention telemetry.logging.level", err.Error())
	}
}

func TestFieldError_Error(t *testing.T) {
	e := FieldError{Field: "policy.length.min", Message: "must not be negative"}
	if e.Error() != "policy.length.min: must not be negative" {
		t.Errorf("unexpected message: %s", e.Error())
	}
}

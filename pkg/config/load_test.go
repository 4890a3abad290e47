package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
policy:
  allowed:
    characters: "abc"
    report_all: false
    enhanced_messages: true
  length:
    min: 8
    max: 64
telemetry:
  logging:
    level: debug
    format: json
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Policy.Allowed.Characters != "abc" {
		t.Errorf("allowed characters = %q, want abc", cfg.Policy.Allowed.Characters)
	}
	if cfg.Policy.Allowed.ReportAll == nil || *cfg.Policy.Allowed.ReportAll {
		t.Error("report_all = true, want false")
	}
	if !cfg.Policy.Allowed.EnhancedMessages {
		t.Error("enhanced_messages = false, want true")
	}
	if cfg.Policy.Length.Min != 8 || cfg.Policy.Length.Max != 64 {
		t.Errorf("length bounds = %d/%d, want 8/64", cfg.Policy.Length.Min, cfg.Policy.Length.Max)
	}
	// Defaults fill the rest.
	if cfg.Policy.Allowed.MatchBehavior != "contains" {
		t.Errorf("match behavior = %q, want default contains", cfg.Policy.Allowed.MatchBehavior)
	}
	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("listen address = %q, want default", cfg.Server.ListenAddress)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "{}\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Policy.Allowed.Characters != DefaultAllowedCharacters {
		t.Error("expected default allowed characters")
	}
	if cfg.Policy.Allowed.ReportAll == nil || !*cfg.Policy.Allowed.ReportAll {
		t.Error("expected report_all default true")
	}
	if cfg.Telemetry.Logging.Level != "info" || cfg.Telemetry.Logging.Format != "text" {
		t.Error("expected default logging settings")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "policy: [not a mapping\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoadConfig_InvalidAfterParse(t *testing.T) {
	path := writeConfig(t, `
policy:
  length:
    min: 12
    max: 4
`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
policy:
  allowed:
    characters: "abc"
`)

	t.Setenv("BASTION_POLICY_ALLOWED_CHARACTERS", "xyz")
	t.Setenv("BASTION_POLICY_LENGTH_MIN", "10")
	t.Setenv("BASTION_TELEMETRY_LOGGING_FORMAT", "json")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Policy.Allowed.Characters != "xyz" {
		t.Errorf("allowed characters = %q, want env override xyz", cfg.Policy.Allowed.Characters)
	}
	if cfg.Policy.Length.Min != 10 {
		t.Errorf("length min = %d, want env override 10", cfg.Policy.Length.Min)
	}
	if cfg.Telemetry.Logging.Format != "json" {
		t.Errorf("log format = %q, want env override json", cfg.Telemetry.Logging.Format)
	}
}

func TestLoadConfigWithEnvOverrides_InvalidOverride(t *testing.T) {
	path := writeConfig(t, "{}\n")
	t.Setenv("BASTION_POLICY_ALLOWED_MATCH_BEHAVIOR", "around")

	if _, err := LoadConfigWithEnvOverrides(path); err == nil {
		t.Fatal("expected validation to fail after bad override")
	}
}

func TestLoadConfigWithEnvOverrides_UnparsableValues(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		field  string
	}{
		{"bad length min", "BASTION_POLICY_LENGTH_MIN", "ten", "policy.length.min"},
		{"bad length max", "BASTION_POLICY_LENGTH_MAX", "64x", "policy.length.max"},
		{"bad report_all", "BASTION_POLICY_ALLOWED_REPORT_ALL", "yep", "policy.allowed.report_all"},
		{"bad enhanced_messages", "BASTION_POLICY_ALLOWED_ENHANCED_MESSAGES", "2", "policy.allowed.enhanced_messages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "{}\n")
			t.Setenv(tt.envVar, tt.value)

			_, err := LoadConfigWithEnvOverrides(path)
			if err == nil {
				t.Fatalf("unparsable %s was silently dropped", tt.envVar)
			}
			var validationErr ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if len(validationErr.Errors) != 1 || validationErr.Errors[0].Field != tt.field {
				t.Errorf("Errors = %+v, want one error on %s", validationErr.Errors, tt.field)
			}
			if !strings.Contains(validationErr.Errors[0].Message, tt.envVar) {
				t.Errorf("Message = %q, want mention of %s", validationErr.Errors[0].Message, tt.envVar)
			}
		})
	}
}

func TestLoadConfigWithEnvOverrides_CollectsAllParseErrors(t *testing.T) {
	path := writeConfig(t, "{}\n")
	t.Setenv("BASTION_POLICY_LENGTH_MIN", "ten")
	t.Setenv("BASTION_POLICY_ALLOWED_REPORT_ALL", "yep")

	_, err := LoadConfigWithEnvOverrides(path)
	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if len(validationErr.Errors) != 2 {
		t.Errorf("len(Errors) = %d, want 2: %+v", len(validationErr.Errors), validationErr.Errors)
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors. Environment variables are not consulted; use
// LoadConfigWithEnvOverrides for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and
// applies environment variable overrides on top. Variables follow the
// naming convention BASTION_SECTION_FIELD and always take precedence over
// file values. An override that cannot be parsed is a validation error,
// not a silent fallback to the file value.
//
// The loading sequence is:
//  1. Load YAML from file
//  2. Apply default values
//  3. Apply environment variable overrides
//  4. Re-apply defaults for sections the overrides enabled
//  5. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if errs := applyEnvOverrides(cfg); len(errs) > 0 {
		return nil, ValidationError{Errors: errs}
	}

	// Overrides can enable rule sections that were absent from the
	// file, so their dependent defaults are filled in again.
	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration invalid after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies BASTION_* environment variables to the
// configuration, collecting a FieldError for every value that does not
// parse.
func applyEnvOverrides(cfg *Config) []FieldError {
	var errs []FieldError

	if val := os.Getenv("BASTION_POLICY_ALLOWED_CHARACTERS"); val != "" {
		cfg.Policy.Allowed.Characters = val
	}
	if val := os.Getenv("BASTION_POLICY_ALLOWED_MATCH_BEHAVIOR"); val != "" {
		cfg.Policy.Allowed.MatchBehavior = val
	}
	if val := os.Getenv("BASTION_POLICY_ALLOWED_REPORT_ALL"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Policy.Allowed.ReportAll = boolPtr(b)
		} else {
			errs = append(errs, envParseError("BASTION_POLICY_ALLOWED_REPORT_ALL", "policy.allowed.report_all", val, "boolean"))
		}
	}
	if val := os.Getenv("BASTION_POLICY_ALLOWED_ENHANCED_MESSAGES"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Policy.Allowed.EnhancedMessages = b
		} else {
			errs = append(errs, envParseError("BASTION_POLICY_ALLOWED_ENHANCED_MESSAGES", "policy.allowed.enhanced_messages", val, "boolean"))
		}
	}
	if val := os.Getenv("BASTION_POLICY_ILLEGAL_CHARACTERS"); val != "" {
		cfg.Policy.Illegal.Characters = val
	}
	if val := os.Getenv("BASTION_POLICY_LENGTH_MIN"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Policy.Length.Min = i
		} else {
			errs = append(errs, envParseError("BASTION_POLICY_LENGTH_MIN", "policy.length.min", val, "integer"))
		}
	}
	if val := os.Getenv("BASTION_POLICY_LENGTH_MAX"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Policy.Length.Max = i
		} else {
			errs = append(errs, envParseError("BASTION_POLICY_LENGTH_MAX", "policy.length.max", val, "integer"))
		}
	}
	if val := os.Getenv("BASTION_POLICY_DICTIONARY_BACKEND"); val != "" {
		cfg.Policy.Dictionary.Backend = val
	}
	if val := os.Getenv("BASTION_POLICY_DICTIONARY_PATH"); val != "" {
		cfg.Policy.Dictionary.Path = val
	}
	if val := os.Getenv("BASTION_SERVER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
	if val := os.Getenv("BASTION_TELEMETRY_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("BASTION_TELEMETRY_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}

	return errs
}

// envParseError describes an environment override that failed to parse.
func envParseError(envVar, field, val, kind string) FieldError {
	return FieldError{
		Field:   field,
		Message: fmt.Sprintf("invalid %s %q in %s", kind, val, envVar),
	}
}

// Package config provides configuration management for Bastion.
//
// Configuration is loaded from a YAML policy file, overlaid with defaults
// and optional environment variable overrides, and validated before use.
//
// # Loading
//
//	cfg, err := config.LoadConfig("policy.yaml")
//
// or, with environment overrides applied on top:
//
//	cfg, err := config.LoadConfigWithEnvOverrides("policy.yaml")
//
// Environment variables follow the naming convention BASTION_SECTION_FIELD,
// for example:
//
//   - BASTION_POLICY_ALLOWED_CHARACTERS overrides policy.allowed.characters
//   - BASTION_POLICY_DICTIONARY_PATH overrides policy.dictionary.path
//   - BASTION_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// Values are applied in order: defaults, YAML file, environment overrides,
// then validation. Validation errors carry dotted field paths:
//
//	configuration validation failed with 2 errors:
//	  - policy.allowed.match_behavior: unknown match behavior "around"
//	  - policy.length.max: must not be below policy.length.min
//
// # Example policy file
//
//	policy:
//	  allowed:
//	    characters: "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
//	    match_behavior: contains
//	    report_all: true
//	    enhanced_messages: false
//	  length:
//	    min: 8
//	    max: 64
//	  whitespace:
//	    enabled: true
//	  dictionary:
//	    backend: file
//	    path: ./banned.txt
//	    refresh_schedule: "0 3 * * *"
//
//	telemetry:
//	  logging:
//	    level: info
//	    format: json
package config

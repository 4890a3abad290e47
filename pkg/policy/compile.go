package policy

import (
	"errors"
	"fmt"

	"bastion-hq/bastion/pkg/config"
	"bastion-hq/bastion/pkg/dictionary"
	"bastion-hq/bastion/pkg/rule"
)

// RuleSet is a compiled, immutable set of rules plus the resources
// backing them. Rules are run in compile order: allowed characters,
// illegal characters, whitespace, length, dictionary.
type RuleSet struct {
	rules   []rule.Rule
	closers []func() error
}

// Rules returns the compiled rules in execution order.
func (s *RuleSet) Rules() []rule.Rule {
	return s.rules
}

// Close releases the resources backing the rule set.
func (s *RuleSet) Close() error {
	var errs []error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Compile builds a RuleSet from a validated policy configuration.
// Rule sections left at their zero value are skipped, except the
// allowed-character rule, which is always present.
func Compile(cfg *config.PolicyConfig) (*RuleSet, error) {
	set := &RuleSet{}

	allowed, err := rule.NewAllowedCharacterRule(
		[]rune(cfg.Allowed.Characters),
		characterOptions(cfg.Allowed.MatchBehavior, cfg.Allowed.ReportAll, cfg.Allowed.EnhancedMessages)...,
	)
	if err != nil {
		return nil, fmt.Errorf("allowed-character rule: %w", err)
	}
	set.rules = append(set.rules, allowed)

	if cfg.Illegal.Characters != "" {
		illegal, err := rule.NewIllegalCharacterRule(
			[]rune(cfg.Illegal.Characters),
			characterOptions(cfg.Illegal.MatchBehavior, cfg.Illegal.ReportAll, cfg.Illegal.EnhancedMessages)...,
		)
		if err != nil {
			return nil, fmt.Errorf("illegal-character rule: %w", err)
		}
		set.rules = append(set.rules, illegal)
	}

	if cfg.Whitespace.Enabled {
		set.rules = append(set.rules, rule.NewWhitespaceRule(
			characterOptions(cfg.Whitespace.MatchBehavior, cfg.Whitespace.ReportAll, false)...,
		))
	}

	if cfg.Length.Min > 0 || cfg.Length.Max > 0 {
		length, err := rule.NewLengthRule(cfg.Length.Min, cfg.Length.Max)
		if err != nil {
			return nil, fmt.Errorf("length rule: %w", err)
		}
		set.rules = append(set.rules, length)
	}

	if cfg.Dictionary.Backend != "" {
		store, err := openWordStore(&cfg.Dictionary, set)
		if err != nil {
			set.Close()
			return nil, fmt.Errorf("dictionary rule: %w", err)
		}
		dict, err := rule.NewDictionaryRule(store)
		if err != nil {
			set.Close()
			return nil, fmt.Errorf("dictionary rule: %w", err)
		}
		set.rules = append(set.rules, dict)
	}

	return set, nil
}

// characterOptions translates config fields into rule options.
func characterOptions(behavior string, reportAll *bool, enhanced bool) []rule.CharacterRuleOption {
	var opts []rule.CharacterRuleOption
	switch behavior {
	case "starts_with":
		opts = append(opts, rule.WithMatchBehavior(rule.StartsWith))
	case "ends_with":
		opts = append(opts, rule.WithMatchBehavior(rule.EndsWith))
	}
	if reportAll != nil && !*reportAll {
		opts = append(opts, rule.WithReportFirst())
	}
	if enhanced {
		opts = append(opts, rule.WithEnhancedErrorMessages())
	}
	return opts
}

// openWordStore opens the configured dictionary backend and registers
// its cleanup with the rule set.
func openWordStore(cfg *config.DictionaryConfig, set *RuleSet) (rule.WordStore, error) {
	switch cfg.Backend {
	case "file":
		if cfg.RefreshSchedule == "" {
			return dictionary.FromFile(cfg.Path)
		}
		refresher, err := dictionary.NewRefresher(cfg.Path, cfg.RefreshSchedule)
		if err != nil {
			return nil, err
		}
		if err := refresher.Start(); err != nil {
			return nil, err
		}
		set.closers = append(set.closers, func() error {
			refresher.Stop()
			return nil
		})
		return refresher, nil
	case "sqlite":
		sqliteCfg := dictionary.DefaultSQLiteConfig()
		sqliteCfg.Path = cfg.Path
		store, err := dictionary.OpenSQLite(sqliteCfg)
		if err != nil {
			return nil, err
		}
		set.closers = append(set.closers, store.Close)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown dictionary backend %q", cfg.Backend)
	}
}

package policy

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"bastion-hq/bastion/pkg/config"
	"bastion-hq/bastion/pkg/rule"
)

// Manager holds the current compiled rule set and swaps in a fresh one
// when the policy file is reloaded. Rules() is safe to call concurrently
// with Reload(); readers always see a complete rule set.
type Manager struct {
	path    string
	logger  *slog.Logger
	current atomic.Pointer[RuleSet]

	// reloadMu serializes reloads; lookups never take it.
	reloadMu sync.Mutex

	// onReload, when set, observes the outcome of every reload attempt.
	onReload func(err error)
}

// NewManager loads and compiles the policy file at path. The initial
// load is eager so a bad policy surfaces at startup, not at first use.
func NewManager(path string, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{
		path:   path,
		logger: logger.With("component", "policy.manager"),
	}

	set, err := m.load()
	if err != nil {
		return nil, err
	}
	m.current.Store(set)
	return m, nil
}

// OnReload registers a callback observing every reload outcome. Must be
// called before the watcher starts driving reloads.
func (m *Manager) OnReload(fn func(err error)) {
	m.onReload = fn
}

// Rules returns the current rule set's rules.
func (m *Manager) Rules() []rule.Rule {
	return m.current.Load().Rules()
}

// Reload recompiles the policy file and swaps the new rule set in. On
// failure the previous rule set stays in service.
func (m *Manager) Reload() error {
	m.reloadMu.Lock()
	defer m.reloadMu.Unlock()

	set, err := m.load()
	if m.onReload != nil {
		m.onReload(err)
	}
	if err != nil {
		m.logger.Error("policy reload failed, keeping previous rule set",
			"path", m.path,
			"error", err,
		)
		return err
	}

	old := m.current.Swap(set)
	if old != nil {
		if err := old.Close(); err != nil {
			m.logger.Warn("failed to release previous rule set", "error", err)
		}
	}
	m.logger.Info("policy reloaded", "path", m.path, "rules", len(set.Rules()))
	return nil
}

// Close releases the current rule set.
func (m *Manager) Close() error {
	if set := m.current.Load(); set != nil {
		return set.Close()
	}
	return nil
}

func (m *Manager) load() (*RuleSet, error) {
	cfg, err := config.LoadConfigWithEnvOverrides(m.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy %q: %w", m.path, err)
	}
	return Compile(&cfg.Policy)
}

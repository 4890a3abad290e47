package dictionary

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/robfig/cron/v3"
)

// Refresher serves lookups from a file-backed word list and reloads the
// file on a cron schedule, so an updated breach list is picked up
// without restarting the process. Lookups hit the current snapshot via
// an atomic pointer; a failed reload keeps the previous snapshot in
// service.
type Refresher struct {
	path     string
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	current  atomic.Pointer[Store]

	mu      sync.Mutex
	running bool
}

// NewRefresher loads the word list at path once, eagerly, and prepares
// the reload schedule. Common cron expressions:
//
//   - "0 3 * * *"   - daily at 3 AM
//   - "0 */6 * * *" - every 6 hours
//
// An empty schedule is valid: the list is loaded once and never
// refreshed.
func NewRefresher(path, schedule string) (*Refresher, error) {
	if schedule != "" {
		if _, err := cron.ParseStandard(schedule); err != nil {
			return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
		}
	}

	store, err := FromFile(path)
	if err != nil {
		return nil, err
	}

	r := &Refresher{
		path:     path,
		schedule: schedule,
		cron:     cron.New(),
		logger:   slog.Default().With("component", "dictionary.refresher"),
	}
	r.current.Store(store)
	return r, nil
}

// Contains reports whether word is in the current snapshot.
func (r *Refresher) Contains(word string) bool {
	return r.current.Load().Contains(word)
}

// Len returns the word count of the current snapshot.
func (r *Refresher) Len() int {
	return r.current.Load().Len()
}

// Start begins the scheduled reloads. It does nothing when no schedule
// is configured, and is idempotent while running.
func (r *Refresher) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.schedule == "" || r.running {
		return nil
	}

	if _, err := r.cron.AddFunc(r.schedule, r.reload); err != nil {
		return fmt.Errorf("failed to schedule word list refresh: %w", err)
	}
	r.cron.Start()
	r.running = true
	r.logger.Info("word list refresh scheduled", "path", r.path, "schedule", r.schedule)
	return nil
}

// Stop halts scheduled reloads. Lookups keep working against the last
// snapshot.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.running = false
	r.logger.Info("word list refresh stopped", "path", r.path)
}

// reload swaps in a fresh snapshot of the word list. On failure the old
// snapshot stays in service.
func (r *Refresher) reload() {
	store, err := FromFile(r.path)
	if err != nil {
		r.logger.Error("word list reload failed, keeping previous snapshot",
			"path", r.path,
			"error", err,
		)
		return
	}
	r.current.Store(store)
	r.logger.Info("word list reloaded", "path", r.path, "words", store.Len())
}

package policy

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceInterval is how long the watcher waits after the last
// filesystem event before triggering a reload. Editors often emit
// several events per save; debouncing prevents reload storms.
const DefaultDebounceInterval = 100 * time.Millisecond

// Watcher watches the policy file for changes and triggers manager
// reloads. It watches the containing directory rather than the file
// itself, so atomic save-and-rename (the common editor behavior)
// is still observed.
type Watcher struct {
	watcher  *fsnotify.Watcher
	manager  *Manager
	logger   *slog.Logger
	debounce time.Duration
	file     string

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher creates a watcher driving reloads of manager from changes
// to its policy file. A non-positive debounce falls back to
// DefaultDebounceInterval.
func NewWatcher(manager *Manager, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounceInterval
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		watcher:  fsWatcher,
		manager:  manager,
		logger:   slog.Default().With("component", "policy.watcher"),
		debounce: debounce,
		file:     filepath.Base(manager.path),
	}, nil
}

// Start begins watching. It is an error to start a running watcher.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("watcher already running")
	}

	dir := filepath.Dir(w.manager.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", dir, err)
	}

	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.running = true

	go w.loop()

	w.logger.Info("watching policy file", "path", w.manager.path, "debounce", w.debounce)
	return nil
}

// Stop halts the watcher and releases its filesystem resources.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	close(w.stopCh)
	<-w.doneCh
	w.watcher.Close()
	w.running = false
	w.logger.Info("policy watcher stopped")
}

// loop consumes filesystem events, debouncing bursts into one reload.
func (w *Watcher) loop() {
	defer close(w.doneCh)

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("policy file event", "op", event.Op.String(), "name", event.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", "error", err)

		case <-timerCh:
			timer = nil
			timerCh = nil
			if err := w.manager.Reload(); err != nil {
				// Manager already logged the cause; stay watching so a
				// corrected save recovers.
				continue
			}
		}
	}
}

// relevant reports whether the event concerns the policy file with an
// operation that can change its contents.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != w.file {
		return false
	}
	return event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Rename)
}

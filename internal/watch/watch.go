// Package watch re-runs work whenever a source tree changes on disk.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"deo/internal/logging"
)

const defaultDebounce = 2 * time.Second

// Options configures a Watcher.
type Options struct {
	// Debounce is the quiet period after the last event before onChange runs.
	Debounce time.Duration
}

// Watcher watches a directory tree recursively. Directories created while
// the watcher runs are added as they appear.
type Watcher struct {
	root     string
	debounce time.Duration
	logger   *slog.Logger
	fsw      *fsnotify.Watcher

	mu      sync.Mutex
	watched map[string]struct{}
}

// New starts watching root and every directory below it.
func New(root string, opts Options, logger *slog.Logger) (*Watcher, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve watch root: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("watch root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch root %q is not a directory", absRoot)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	w := &Watcher{
		root:     absRoot,
		debounce: debounce,
		logger:   logging.NewComponentLogger(logger, "watch"),
		fsw:      fsw,
		watched:  make(map[string]struct{}),
	}
	if err := w.fsw.Add(absRoot); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", absRoot, err)
	}
	w.watched[absRoot] = struct{}{}
	w.addTree(absRoot)
	return w, nil
}

// Run blocks until ctx is done, calling onChange once per burst of changes.
// Calls to onChange never overlap. The watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context)) error {
	defer w.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	pending := 0
	for {
		var fire <-chan time.Time
		if pending > 0 {
			fire = timer.C
		}

		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.handle(event) {
				continue
			}
			pending++
			timer.Reset(w.debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logging.WarnWithContext(w.logger, "watcher error", "watch_error",
				logging.Error(err),
				logging.String(logging.FieldImpact, "some changes may be missed until the next event"),
			)
		case <-fire:
			w.logger.Debug("change burst settled", logging.Int("events", pending))
			pending = 0
			onChange(ctx)
		}
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// WatchedPaths returns the watched directories in sorted order.
func (w *Watcher) WatchedPaths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Sorted(maps.Keys(w.watched))
}

func (w *Watcher) handle(event fsnotify.Event) bool {
	switch {
	case event.Has(fsnotify.Create):
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.addTree(event.Name)
		}
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		w.mu.Lock()
		delete(w.watched, event.Name)
		w.mu.Unlock()
	case event.Has(fsnotify.Write):
	default:
		return false
	}
	w.logger.Debug("filesystem change",
		logging.String(logging.FieldPath, event.Name),
		logging.String("op", event.Op.String()),
	)
	return true
}

func (w *Watcher) addTree(dir string) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		w.mu.Lock()
		defer w.mu.Unlock()
		if _, ok := w.watched[path]; ok {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			logging.WarnWithContext(w.logger, "failed to watch directory", "watch_add_failed",
				logging.String(logging.FieldPath, path),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "raise fs.inotify.max_user_watches or narrow the source directory"),
			)
			return nil
		}
		w.watched[path] = struct{}{}
		return nil
	})
}

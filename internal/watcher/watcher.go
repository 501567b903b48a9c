// Package watcher observes a source tree and emits debounced triggers when
// files appear or change, so watch mode can kick off an organize pass after
// a drop of files settles.
package watcher

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"sortd/internal/logging"
	"sortd/internal/services"
)

// Watcher recursively watches a source root. New subdirectories are added
// to the watch set as they appear.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *debouncer
	root      string
	logger    *slog.Logger
}

// New builds a recursive watcher over root with the given quiet interval.
func New(root string, quiet time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "watch", "create watcher", root, err)
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		debouncer: newDebouncer(quiet),
		root:      root,
		logger:    logger,
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if addErr := fsWatcher.Add(path); addErr != nil {
			w.logger.Warn("cannot watch directory",
				logging.String("path", path),
				logging.Error(addErr))
		}
		return nil
	})
	if err != nil {
		fsWatcher.Close()
		return nil, services.Wrap(services.ErrInvalidSource, "watch", "register directories", root, err)
	}
	return w, nil
}

// Triggers returns the channel carrying debounced change batches.
func (w *Watcher) Triggers() <-chan Trigger {
	return w.debouncer.output
}

// Run pumps filesystem events into the debouncer until the context is
// cancelled or the watcher is closed. Call it in a goroutine.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", logging.Error(err))
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.fsWatcher.Add(event.Name); err != nil {
				w.logger.Warn("cannot watch new directory",
					logging.String("path", event.Name),
					logging.Error(err))
			}
			return
		}
	}
	// Only appearing or changing files warrant an organize pass; removals
	// and permission changes do not add work.
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	w.debouncer.Add(event.Name)
}

// Package watch re-runs a callback when files in a set of directories change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"gender-swap/internal/common"
)

// ChangeFunc handles one debounced batch of changed paths.
type ChangeFunc func(ctx context.Context, changed []string) error

// Watcher collects file system events for a fixed set of directories and
// reports them in debounced batches.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	accept   func(path string) bool
	logger   *zap.Logger
}

// New watches dirs (non-recursively). Only events on paths accept reports
// true for are reported; a nil accept takes every path.
func New(dirs []string, debounce time.Duration, accept func(path string) bool, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if accept == nil {
		accept = func(string) bool { return true }
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	added := make([]string, 0, len(dirs))

	for _, dir := range dirs {
		dir = filepath.Clean(dir)
		if slices.Contains(added, dir) {
			continue
		}

		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}

		added = append(added, dir)
		logger.Debug("watching directory", zap.String("dir", dir))
	}

	return &Watcher{watcher: fw, debounce: debounce, accept: accept, logger: logger}, nil
}

// Run delivers changes to onChange until ctx is done, then releases the
// watcher. A failing onChange is logged and watching continues.
func (w *Watcher) Run(ctx context.Context, onChange ChangeFunc) error {
	defer func() {
		if err := w.Close(); err != nil {
			w.logger.Warn("closing watcher", zap.Error(err))
		}
	}()

	pending := make(map[string]struct{})

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if !relevant(event) || !w.accept(event.Name) {
				continue
			}

			w.logger.Debug("file changed", zap.String("file", event.Name), zap.Stringer("op", event.Op))

			pending[event.Name] = struct{}{}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}

			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			w.logger.Warn("watch error", zap.Error(err))

		case <-fire:
			fire = nil
			changed := common.SortedKeys(pending)
			clear(pending)

			if err := onChange(ctx, changed); err != nil {
				w.logger.Warn("handling changes failed", zap.Strings("files", changed), zap.Error(err))
			}
		}
	}
}

// Close releases the underlying watcher. Run calls it on return.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

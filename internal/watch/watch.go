// Package watch regenerates icons whenever the source image changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/droidicon"
)

// DefaultDebounce is the quiet period after the last change before the
// callback runs. Editors often save in several writes.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors a single source file.
//
// The parent directory is watched rather than the file itself, so a file
// replaced by rename (as many editors save) keeps being tracked.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// New creates a watcher for the file at path. A non-positive debounce
// selects DefaultDebounce.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch folder %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		watcher:  fsWatcher,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run calls regenerate after every burst of changes to the watched file,
// one call at a time, until ctx is cancelled or the watcher is closed.
// A failing regenerate is logged and watching continues.
func (w *Watcher) Run(ctx context.Context, regenerate func() error) error {
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	log := droidicon.Logger()
	log.Info("watching source", "path", w.path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			log.Debug("source changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "err", err)

		case <-timer.C:
			if err := regenerate(); err != nil {
				log.Warn("regeneration failed", "path", w.path, "err", err)
				continue
			}
			log.Info("icons regenerated", "path", w.path)
		}
	}
}

// relevant reports whether event is a create or write of the watched file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write)
}

// Close stops the watcher. A running Run returns.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

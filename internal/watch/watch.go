// Package watch reloads a pattern file whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"lifegrid/internal/ctxlog"
	"lifegrid/internal/pattern"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// Handler receives a freshly decoded pattern.
type Handler func(p pattern.Pattern, diag pattern.Diagnostics)

// Watcher watches a single pattern file. The parent directory is watched so
// editors that replace the file through a rename are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	fs       *fsnotify.Watcher
}

// New starts watching path. The file must have a known pattern extension.
func New(path string, debounce time.Duration) (*Watcher, error) {
	if _, err := pattern.FormatOf(path); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %q: %w", filepath.Dir(abs), err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{path: abs, debounce: debounce, fs: fsw}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Run delivers a decoded pattern to h after each settled change until ctx is
// cancelled or the watcher is closed. Decode failures are logged and skipped.
func (w *Watcher) Run(ctx context.Context, h Handler) error {
	logger := ctxlog.FromContext(ctx).With("path", w.path)
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		case <-timer.C:
			p, diag, err := pattern.Load(w.path)
			if err != nil {
				logger.Warn("reload pattern", "err", err)
				continue
			}
			logger.Debug("pattern reloaded", "cells", p.Len(), "ignored", len(diag.Ignored))
			h(p, diag)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

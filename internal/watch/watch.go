// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/matt-FFFFFF/hifumi/internal/ctxlog"
)

// DefaultDebounce coalesces the events of one editor save.
const DefaultDebounce = 500 * time.Millisecond

var (
	// ErrNoPath is returned when the watcher has no file to watch.
	ErrNoPath = errors.New("watch path is empty")
	// ErrNoReload is returned when the watcher has no reload function.
	ErrNoReload = errors.New("reload function is nil")
	// ErrWatch is returned when the file system watch cannot be set up.
	ErrWatch = errors.New("cannot watch configuration")
)

// ReloadFunc is called once per burst of changes. *commandindex.Index.Reload satisfies it.
type ReloadFunc func(ctx context.Context) error

// Watcher watches one file. The parent directory is watched so atomic
// replacements by rename are seen.
type Watcher struct {
	path     string
	debounce time.Duration
	reload   ReloadFunc
	ready    chan struct{}
	once     sync.Once

	mu       sync.Mutex
	timer    *time.Timer
	inflight sync.WaitGroup
}

// New creates a watcher for path. A zero debounce uses DefaultDebounce.
func New(path string, debounce time.Duration, reload ReloadFunc) (*Watcher, error) {
	if path == "" {
		return nil, ErrNoPath
	}

	if reload == nil {
		return nil, ErrNoReload
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Join(ErrWatch, err)
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		reload:   reload,
		ready:    make(chan struct{}),
	}, nil
}

// Ready is closed once the watch is established or Run has failed.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled. Reload errors are logged and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.signalReady()

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Join(ErrWatch, err)
	}

	defer func() {
		_ = fw.Close()
	}()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return errors.Join(ErrWatch, fmt.Errorf("%s: %w", filepath.Dir(w.path), err))
	}

	defer w.stop()

	ctxlog.Info(ctx, "watching configuration", "path", w.path, "debounce", w.debounce)
	w.signalReady()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != w.path {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				ctxlog.Debug(ctx, "configuration changed", "op", event.Op.String())
				w.schedule(ctx)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			ctxlog.Warn(ctx, "watcher error", "error", err)
		}
	}
}

func (w *Watcher) signalReady() {
	w.once.Do(func() { close(w.ready) })
}

// schedule restarts the debounce timer.
func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil && w.timer.Stop() {
		w.inflight.Done()
	}

	w.inflight.Add(1)
	w.timer = time.AfterFunc(w.debounce, func() {
		defer w.inflight.Done()

		if ctx.Err() != nil {
			return
		}

		if err := w.reload(ctx); err != nil {
			ctxlog.Error(ctx, "reload failed, keeping the previous configuration", "path", w.path, "error", err)
			return
		}

		ctxlog.Info(ctx, "configuration reloaded", "path", w.path)
	})
}

// stop cancels a pending reload and waits for a running one.
func (w *Watcher) stop() {
	w.mu.Lock()
	if w.timer != nil && w.timer.Stop() {
		w.inflight.Done()
	}
	w.timer = nil
	w.mu.Unlock()

	w.inflight.Wait()
}

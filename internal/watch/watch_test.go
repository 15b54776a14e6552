// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew_Errors(t *testing.T) {
	reload := func(context.Context) error { return nil }

	_, err := New("", 0, reload)
	require.ErrorIs(t, err, ErrNoPath)

	_, err = New("hifumi.yaml", 0, nil)
	require.ErrorIs(t, err, ErrNoReload)

	w, err := New("hifumi.yaml", 0, reload)
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, w.debounce)
	assert.True(t, filepath.IsAbs(w.path))
}

func startWatcher(t *testing.T, path string, reload ReloadFunc) (context.CancelFunc, <-chan error) {
	t.Helper()

	w, err := New(path, 50*time.Millisecond, reload)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- w.Run(ctx)
	}()

	select {
	case <-w.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("watcher not ready")
	}

	return cancel, done
}

func TestRun_ReloadsOncePerBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hifumi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prefix: '>'\n"), 0o644))

	var calls atomic.Int32

	cancel, done := startWatcher(t, path, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	for range 3 {
		require.NoError(t, os.WriteFile(path, []byte("prefix: '!'\n"), 0o644))
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestRun_AtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hifumi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o644))

	var calls atomic.Int32

	cancel, done := startWatcher(t, path, func(context.Context) error {
		calls.Add(1)
		return errors.New("bad config")
	})

	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte("a: 2\n"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("a: 3\n"), 0o644))
	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestRun_MissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "nope", "hifumi.yaml"), 0, func(context.Context) error { return nil })
	require.NoError(t, err)

	err = w.Run(context.Background())
	require.ErrorIs(t, err, ErrWatch)

	select {
	case <-w.Ready():
	default:
		t.Fatal("ready not closed")
	}
}

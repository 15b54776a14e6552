// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatch_SecondSignalCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 2)
	done := make(chan struct{})

	go func() {
		Watch(ctx, sigCh, cancel)
		close(done)
	}()

	sigCh <- syscall.SIGINT

	select {
	case <-ctx.Done():
		t.Fatal("context cancelled after the first signal")
	case <-time.After(50 * time.Millisecond):
	}

	sigCh <- syscall.SIGINT

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watchdog did not return")
	}

	assert.Error(t, ctx.Err())
}

func TestWatch_ClosedChannelReturns(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal)
	close(sigCh)

	Watch(ctx, sigCh, cancel)
	assert.NoError(t, ctx.Err())
}

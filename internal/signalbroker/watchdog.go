// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/hifumi/internal/ctxlog"
)

// Watch monitors the signal channel until it is closed or ctx is done.
// It cancels the context on the second signal of a given type.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, dup := seen[sig]; dup {
				ctxlog.Info(ctx, "watchdog", "detail", "received second signal of type, terminating", "signal", sig.String())
				cancel()

				return
			}

			ctxlog.Info(ctx, "watchdog", "detail", "received first signal of type, press again to quit", "signal", sig.String())

			seen[sig] = struct{}{}
		}
	}
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		setupContext  func() context.Context
		expectDefault bool
	}{
		{
			name: "context with logger",
			setupContext: func() context.Context {
				return New(context.Background(), slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			},
			expectDefault: false,
		},
		{
			name:          "context without logger",
			setupContext:  context.Background,
			expectDefault: true,
		},
		{
			name: "context with nil logger",
			setupContext: func() context.Context {
				return New(context.Background(), nil)
			},
			expectDefault: true,
		},
		{
			name: "context with wrong type value",
			setupContext: func() context.Context {
				return context.WithValue(context.Background(), loggerKey{}, "not a logger")
			},
			expectDefault: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := Logger(tt.setupContext())
			assert.NotNil(t, logger)

			if tt.expectDefault {
				assert.Same(t, DefaultLogger, logger)
			} else {
				assert.NotSame(t, DefaultLogger, logger)
			}
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	ctx := New(context.Background(), logger)

	tests := []struct {
		name     string
		logFunc  func(context.Context, string, ...any)
		message  string
		expected string
	}{
		{name: "info", logFunc: Info, message: "test info message", expected: "INFO"},
		{name: "debug", logFunc: Debug, message: "test debug message", expected: "DEBUG"},
		{name: "warn", logFunc: Warn, message: "test warning message", expected: "WARN"},
		{name: "error", logFunc: Error, message: "test error message", expected: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc(ctx, tt.message, "key", "value")

			output := buf.String()
			assert.Contains(t, output, tt.expected)
			assert.Contains(t, output, tt.message)
			assert.Contains(t, output, "key=value")
		})
	}
}

func TestNewForTUI(t *testing.T) {
	orig := LevelVar.Level()
	defer LevelVar.Set(orig)

	LevelVar.Set(slog.LevelDebug)

	var buf bytes.Buffer

	ctx := NewForTUI(context.Background(), &buf)
	Info(ctx, "buffered", "page", 2)

	assert.Contains(t, buf.String(), "buffered")
	assert.Contains(t, buf.String(), "page=2")
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		envValue      string
		expectedLevel slog.Level
	}{
		{envValue: "DEBUG", expectedLevel: slog.LevelDebug},
		{envValue: "debug", expectedLevel: slog.LevelDebug},
		{envValue: "INFO", expectedLevel: slog.LevelInfo},
		{envValue: "WARN", expectedLevel: slog.LevelWarn},
		{envValue: "ERROR", expectedLevel: slog.LevelError},
		{envValue: "INVALID", expectedLevel: slog.LevelInfo},
		{envValue: "", expectedLevel: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.envValue, func(t *testing.T) {
			t.Setenv(hifumiLogLevelEnvVar, tt.envValue)
			assert.Equal(t, tt.expectedLevel, logLevelFromEnv())
		})
	}
}

func TestLevelVar(t *testing.T) {
	orig := LevelVar.Level()
	defer LevelVar.Set(orig)

	LevelVar.Set(slog.LevelDebug)
	assert.True(t, DefaultLogger.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, JSONLogger.Enabled(context.Background(), slog.LevelDebug))

	LevelVar.Set(slog.LevelError)
	assert.False(t, DefaultLogger.Enabled(context.Background(), slog.LevelWarn))
}

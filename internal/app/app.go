// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"errors"

	"github.com/matt-FFFFFF/hifumi/internal/builtin"
	"github.com/matt-FFFFFF/hifumi/internal/commandindex"
	"github.com/matt-FFFFFF/hifumi/internal/config"
	"github.com/matt-FFFFFF/hifumi/internal/ctxlog"
	"github.com/matt-FFFFFF/hifumi/internal/interpreter"
)

// ErrOpen is returned when the bot cannot be assembled.
var ErrOpen = errors.New("failed to open bot")

// App is an assembled bot.
type App struct {
	Config      *config.Manager
	Index       *commandindex.Index
	Interpreter *interpreter.Interpreter
}

// Open loads the configuration at path and builds the command index over it.
func Open(ctx context.Context, path string, opts builtin.Options) (*App, error) {
	m, err := config.Open(ctx, path)
	if err != nil {
		return nil, errors.Join(ErrOpen, err)
	}

	idx := commandindex.New(ctx, m, builtin.Factories(opts)...)

	ctxlog.Debug(ctx, "bot opened", "config", path, "commands", idx.Len())

	return &App{
		Config:      m,
		Index:       idx,
		Interpreter: interpreter.New(idx),
	}, nil
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package console contains the console subcommand.
package console

import (
	"context"
	"errors"

	"github.com/matt-FFFFFF/hifumi/cmd/hifumi/flags"
	"github.com/matt-FFFFFF/hifumi/internal/builtin"
	"github.com/matt-FFFFFF/hifumi/internal/console"
	"github.com/matt-FFFFFF/hifumi/internal/ctxlog"
	"github.com/matt-FFFFFF/hifumi/internal/watch"
	"github.com/urfave/cli/v3"
)

const (
	watchFlag    = "watch"
	debounceFlag = "debounce"
)

// ConsoleCmd runs the bot with a local line editor as its chat.
var ConsoleCmd = &cli.Command{
	Name:  "console",
	Usage: "Run the bot interactively, every line is handled as a chat message",
	Description: `Start an interactive console. Lines are handled as admin chat messages,
so the configured prefix is required, e.g. ">help" or ">dyncmd get bios".
Type "quit" or "exit", press Ctrl+C or run the shutdown command to leave.`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        watchFlag,
			Aliases:     []string{"w"},
			Usage:       "Reload the command index when the configuration file changes",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
		&cli.DurationFlag{
			Name:  debounceFlag,
			Usage: "Wait this long after the last change before reloading",
			Value: watch.DefaultDebounce,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	a, err := flags.OpenApp(ctx, cmd, builtin.Options{Shutdown: cancel})
	if err != nil {
		return err
	}

	if cmd.Bool(watchFlag) {
		w, err := watch.New(a.Config.Path(), cmd.Duration(debounceFlag), a.Index.Reload)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		done := make(chan struct{})

		go func() {
			defer close(done)

			if err := w.Run(ctx); err != nil {
				logger.Error("configuration watcher stopped", "error", err)
			}
		}()

		defer func() {
			cancel()
			<-done
		}()

		<-w.Ready()
	}

	settings := a.Index.Settings()
	c := console.New(console.NewLiner(), a.Interpreter, cmd.Root().Writer, settings.BotName)

	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}

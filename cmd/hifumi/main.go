// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the hifumi command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/hifumi"
	"github.com/matt-FFFFFF/hifumi/cmd/hifumi/config"
	"github.com/matt-FFFFFF/hifumi/cmd/hifumi/console"
	"github.com/matt-FFFFFF/hifumi/cmd/hifumi/dyncmd"
	"github.com/matt-FFFFFF/hifumi/cmd/hifumi/flags"
	"github.com/matt-FFFFFF/hifumi/cmd/hifumi/help"
	"github.com/matt-FFFFFF/hifumi/internal/ctxlog"
	"github.com/matt-FFFFFF/hifumi/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

// rootCmd is the root command for the CLI.
var rootCmd = &cli.Command{
	Commands: []*cli.Command{
		config.ConfigCmd,
		console.ConsoleCmd,
		dyncmd.DynCmdCmd,
		help.HelpCmd,
	},
	Flags: []cli.Flag{
		flags.Config,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "hifumi",
	Description: `Hifumi is a chat bot command index. It keeps the built-in commands and the
dynamic commands defined in the configuration file in one place, and renders
paginated help grouped by category.

The console subcommand runs the bot locally: every line is handled as a chat
message, so ">help" or ">dyncmd add ..." behave as they would in chat.`,
	Usage:     "hifumi console",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	HideHelpCommand:       true,
	EnableShellCompletion: true,
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	go signalbroker.Watch(ctx, sigCh, cancel)

	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", hifumi.Version, hifumi.Commit)

	err := rootCmd.Run(ctx, os.Args) // Err is handled by cli framework

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Logger(ctx).Debug("command completed successfully")
}

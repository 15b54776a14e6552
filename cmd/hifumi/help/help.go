// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package help contains the help subcommand.
package help

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"github.com/matt-FFFFFF/hifumi/cmd/hifumi/flags"
	"github.com/matt-FFFFFF/hifumi/internal/builtin"
	"github.com/matt-FFFFFF/hifumi/internal/ctxlog"
	"github.com/matt-FFFFFF/hifumi/internal/interpreter"
	"github.com/matt-FFFFFF/hifumi/internal/tui"
	"github.com/urfave/cli/v3"
)

const (
	categoryArg = "category"
	pageArg     = "page"
	tuiFlag     = "tui"
)

// HelpCmd prints the help pages of the bot.
var HelpCmd = &cli.Command{
	Name:  "help",
	Usage: "Show the bot help pages",
	Description: `Without arguments the root page listing the categories is shown.
With a category, its first page or the given page is shown.`,
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name: categoryArg,
		},
		&cli.StringArg{
			Name: pageArg,
		},
	},
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        tuiFlag,
			Aliases:     []string{"t", "interactive"},
			Usage:       "Browse the help pages with an interactive Terminal User Interface (TUI)",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	category, page := cmd.StringArg(categoryArg), cmd.StringArg(pageArg)

	if cmd.Bool(tuiFlag) {
		buf := new(bytes.Buffer)
		tuiCtx := ctxlog.NewForTUI(ctx, buf)

		a, err := flags.OpenApp(tuiCtx, cmd, builtin.Options{})
		if err != nil {
			return err
		}

		number, _ := strconv.Atoi(page)
		err = tui.Run(tuiCtx, a.Index.Pages(), category, number)

		buf.WriteTo(cmd.Root().ErrWriter) //nolint:errcheck // Write any buffered log output after the TUI is gone

		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		return nil
	}

	a, err := flags.OpenApp(ctx, cmd, builtin.Options{})
	if err != nil {
		return err
	}

	line := a.Index.Settings().Prefix + strings.TrimSpace(strings.Join([]string{"help", category, page}, " "))

	if _, err := a.Interpreter.Handle(ctx, interpreter.Message{
		Sender:  "cli",
		Content: line,
		Reply:   cmd.Root().Writer,
	}); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}

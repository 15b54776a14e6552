// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package dyncmd contains the dyncmd subcommand, which manages the dynamic
// commands stored in the configuration file.
package dyncmd

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/matt-FFFFFF/hifumi/cmd/hifumi/flags"
	"github.com/matt-FFFFFF/hifumi/internal/builtin"
	"github.com/matt-FFFFFF/hifumi/internal/command"
	"github.com/matt-FFFFFF/hifumi/internal/ctxlog"
	"github.com/matt-FFFFFF/hifumi/internal/importer"
	"github.com/urfave/cli/v3"
)

const (
	nameArg         = "name"
	urlArg          = "url"
	categoryFlag    = "category"
	helpTextFlag    = "help-text"
	titleFlag       = "title"
	descriptionFlag = "description"
	imageFlag       = "image"
)

// DynCmdCmd groups the dynamic command subcommands.
var DynCmdCmd = &cli.Command{
	Name:  "dyncmd",
	Usage: "List, add, delete or import dynamic commands",
	Commands: []*cli.Command{
		listCmd,
		addCmd,
		deleteCmd,
		importCmd,
	},
}

var listCmd = &cli.Command{
	Name:   "list",
	Usage:  "List the dynamic commands",
	Action: listAction,
}

var addCmd = &cli.Command{
	Name:  "add",
	Usage: "Add or replace a dynamic command",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name: nameArg,
		},
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    categoryFlag,
			Aliases: []string{"C"},
			Usage:   "Help category of the command",
			Value:   command.DefaultDynamicCategory,
		},
		&cli.StringFlag{
			Name:  helpTextFlag,
			Usage: "Line shown next to the command in the help pages",
		},
		&cli.StringFlag{
			Name:  titleFlag,
			Usage: "Title of the reply",
		},
		&cli.StringFlag{
			Name:  descriptionFlag,
			Usage: "Body of the reply",
		},
		&cli.StringFlag{
			Name:  imageFlag,
			Usage: "Image URL attached to the reply",
		},
	},
	Action: addAction,
}

var deleteCmd = &cli.Command{
	Name:    "delete",
	Aliases: []string{"rm"},
	Usage:   "Delete a dynamic command",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name: nameArg,
		},
	},
	Action: deleteAction,
}

var importCmd = &cli.Command{
	Name:  "import",
	Usage: "Import a YAML pack of dynamic commands",
	Description: `Import a list of dynamic commands from a YAML document.
The document is either a list of commands or a configuration file with a dynamic_commands key.

URLs use Hashicorp's go-getter syntax, which allows for fetching files from various sources.
See https://github.com/hashicorp/go-getter.`,
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name: urlArg,
		},
	},
	Action: importAction,
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	a, err := flags.OpenApp(ctx, cmd, builtin.Options{})
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 0, 2, ' ', 0) //nolint:mnd
	fmt.Fprintln(tw, "NAME\tCATEGORY\tHELP")

	for _, dc := range a.Config.DynamicCommands() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", dc.Name(), dc.Category(), dc.HelpText())
	}

	return tw.Flush()
}

func addAction(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	name := cmd.StringArg(nameArg)
	if name == "" {
		return cli.Exit("Please specify the name of the dynamic command.", 1)
	}

	a, err := flags.OpenApp(ctx, cmd, builtin.Options{})
	if err != nil {
		return err
	}

	if a.Index.IsCommand(name) && !a.Index.IsDynamicCommand(name) {
		return cli.Exit(errors.Join(builtin.ErrNotDynamic, fmt.Errorf("%q is a built-in command", name)).Error(), 1)
	}

	dc := &command.DynamicCommand{
		CommandName:     name,
		CommandCategory: cmd.String(categoryFlag),
		Help:            cmd.String(helpTextFlag),
		Title:           cmd.String(titleFlag),
		Description:     cmd.String(descriptionFlag),
		ImageURL:        cmd.String(imageFlag),
	}

	if err := dc.Validate(a.Index.Settings().Prefix); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := a.Index.AddCommand(ctx, dc); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logger.Info(fmt.Sprintf("Saved dynamic command %q to %s", name, a.Config.Path()))

	return nil
}

func deleteAction(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	name := cmd.StringArg(nameArg)
	if name == "" {
		return cli.Exit("Please specify the name of the dynamic command.", 1)
	}

	a, err := flags.OpenApp(ctx, cmd, builtin.Options{})
	if err != nil {
		return err
	}

	if !a.Index.IsDynamicCommand(name) {
		logger.Warn(fmt.Sprintf("No dynamic command %q, nothing to delete", name))
		return nil
	}

	if err := a.Index.DeleteCommand(ctx, name); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logger.Info(fmt.Sprintf("Deleted dynamic command %q from %s", name, a.Config.Path()))

	return nil
}

func importAction(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	url := cmd.StringArg(urlArg)
	if url == "" {
		return cli.Exit("Please specify the URL of the pack to import.", 1)
	}

	a, err := flags.OpenApp(ctx, cmd, builtin.Options{})
	if err != nil {
		return err
	}

	cmds, err := importer.Fetch(ctx, url)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	n, err := importer.Import(ctx, a.Index, cmds)
	if err != nil {
		return cli.Exit(fmt.Sprintf("imported %d of %d commands: %s", n, len(cmds), err), 1)
	}

	logger.Info(fmt.Sprintf("Imported %d dynamic commands from %s", n, url))

	return nil
}

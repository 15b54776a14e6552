// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config contains the config subcommand.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/hifumi/cmd/hifumi/flags"
	hificonfig "github.com/matt-FFFFFF/hifumi/internal/config"
	"github.com/matt-FFFFFF/hifumi/internal/ctxlog"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const forceFlag = "force"

// ConfigCmd groups the configuration file subcommands.
var ConfigCmd = &cli.Command{
	Name:  "config",
	Usage: "Validate or create the configuration file",
	Commands: []*cli.Command{
		validateCmd,
		initCmd,
	},
}

var validateCmd = &cli.Command{
	Name:  "validate",
	Usage: "Check the configuration file and report every problem",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		path := cmd.String(flags.ConfigFlag)

		exists, err := afero.Exists(hificonfig.FsFactory(), path)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		if !exists {
			return cli.Exit(fmt.Sprintf("%s does not exist", path), 1)
		}

		cfg, err := hificonfig.Load(ctx, path)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		fmt.Fprintf(cmd.Root().Writer, "%s is valid: %d dynamic commands, prefix %q.\n", path, len(cfg.DynamicCommands), cfg.Prefix)

		return nil
	},
}

var initCmd = &cli.Command{
	Name:  "init",
	Usage: "Write a default configuration file",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        forceFlag,
			Aliases:     []string{"f"},
			Usage:       "Overwrite an existing file",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		path := cmd.String(flags.ConfigFlag)

		_, err := hificonfig.FsFactory().Stat(path)

		switch {
		case err == nil && !cmd.Bool(forceFlag):
			return cli.Exit(fmt.Sprintf("%s already exists, use --force to overwrite it", path), 1)
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return cli.Exit(err.Error(), 1)
		}

		if err := hificonfig.Write(ctx, path, hificonfig.Default()); err != nil {
			return cli.Exit(err.Error(), 1)
		}

		ctxlog.Logger(ctx).Info(fmt.Sprintf("Wrote default configuration to %s", path))

		return nil
	},
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package flags holds the flags shared by the hifumi subcommands.
package flags

import (
	"context"

	"github.com/matt-FFFFFF/hifumi/internal/app"
	"github.com/matt-FFFFFF/hifumi/internal/builtin"
	"github.com/urfave/cli/v3"
)

const (
	// ConfigFlag is the name of the global configuration file flag.
	ConfigFlag = "config"
	// DefaultConfigPath is used when --config is not set.
	DefaultConfigPath = "hifumi.yaml"
)

// Config is the global --config flag.
var Config = &cli.StringFlag{
	Name:      ConfigFlag,
	Aliases:   []string{"c"},
	Usage:     "Path of the bot configuration file, YAML (.yaml, .yml) or HCL (.hcl)",
	Value:     DefaultConfigPath,
	TakesFile: true,
	Sources:   cli.EnvVars("HIFUMI_CONFIG"),
}

// OpenApp assembles the bot from the configuration named by --config.
func OpenApp(ctx context.Context, cmd *cli.Command, opts builtin.Options) (*app.App, error) {
	a, err := app.Open(ctx, cmd.String(ConfigFlag), opts)
	if err != nil {
		return nil, cli.Exit(err.Error(), 1)
	}

	return a, nil
}

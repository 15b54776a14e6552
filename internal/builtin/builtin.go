// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builtin

import (
	"context"

	"github.com/matt-FFFFFF/hifumi/internal/command"
	"github.com/matt-FFFFFF/hifumi/internal/commandindex"
)

// Categories of the built-in commands.
const (
	CategoryGeneral = "general"
	CategoryAdmin   = "admin"
)

// Options configures the built-in commands.
type Options struct {
	// Shutdown is called by the shutdown command. Nil disables the command.
	Shutdown context.CancelFunc
}

// Factories returns the fixed list of built-in commands.
func Factories(opts Options) []commandindex.BuiltinFactory {
	factories := []commandindex.BuiltinFactory{
		func(idx *commandindex.Index) command.Command { return newAbout(idx) },
		func(idx *commandindex.Index) command.Command { return newHelp(idx) },
		func(*commandindex.Index) command.Command { return newWarez() },
		func(idx *commandindex.Index) command.Command { return newDynCmd(idx) },
		func(idx *commandindex.Index) command.Command { return newReload(idx) },
	}

	if opts.Shutdown != nil {
		factories = append(factories, func(*commandindex.Index) command.Command {
			return newShutdown(opts.Shutdown)
		})
	}

	return factories
}

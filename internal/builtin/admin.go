// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builtin

import (
	"context"
	"errors"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/hifumi/internal/command"
	"github.com/matt-FFFFFF/hifumi/internal/commandindex"
)

const (
	dynCmdUsage = "dyncmd add <name> <category> <help text> | <title> | <description> | <image url>\n" +
		"  (the description keeps its line breaks)\n" +
		"dyncmd delete <name>\n" +
		"dyncmd get <name>"
	fieldSeparator = "|"
)

// ErrNotDynamic is returned when dyncmd targets a built-in command.
var ErrNotDynamic = errors.New("not a dynamic command")

type dynCmd struct {
	command.Base
	idx *commandindex.Index
}

func newDynCmd(idx *commandindex.Index) *dynCmd {
	return &dynCmd{
		Base: command.NewAdminBase("dyncmd", CategoryAdmin, "Add, delete or show a dynamic command."),
		idx:  idx,
	}
}

func (c *dynCmd) Run(ctx context.Context, inv *command.Invocation) error {
	if err := c.Authorize(inv); err != nil {
		return err
	}

	if len(inv.Args) < 2 {
		return command.NewErrUsage(dynCmdUsage)
	}

	sub, name := inv.Args[0], inv.Args[1]

	switch sub {
	case "add":
		if len(inv.Args) < 3 {
			return command.NewErrUsage(dynCmdUsage)
		}

		if c.idx.IsCommand(name) && !c.idx.IsDynamicCommand(name) {
			return errors.Join(ErrNotDynamic, errors.New("refusing to shadow built-in "+name))
		}

		dc := ParseDynamicCommand(name, inv.Args[2], inv.TextAfter(3))
		if err := dc.Validate(c.idx.Settings().Prefix); err != nil {
			return err
		}

		if err := c.idx.AddCommand(ctx, dc); err != nil {
			return err
		}

		return inv.Replyf("Saved dynamic command %q.", name)

	case "delete", "del", "remove":
		if !c.idx.IsDynamicCommand(name) {
			return inv.Replyf("No dynamic command %q.", name)
		}

		if err := c.idx.DeleteCommand(ctx, name); err != nil {
			return err
		}

		return inv.Replyf("Deleted dynamic command %q.", name)

	case "get", "show":
		dc := c.idx.DynamicCommand(name)
		if dc == nil {
			return inv.Replyf("No dynamic command %q.", name)
		}

		data, err := yaml.Marshal(dc)
		if err != nil {
			return err
		}

		_, err = inv.Out.Write(data)

		return err

	default:
		return command.NewErrUsage(dynCmdUsage)
	}
}

// ParseDynamicCommand builds a definition from chat text. text is split on
// "|" into help text, title, description and image URL; missing parts stay empty.
// Each part is trimmed, inner spacing and line breaks are kept.
func ParseDynamicCommand(name, category, text string) *command.DynamicCommand {
	parts := strings.Split(text, fieldSeparator)
	field := func(i int) string {
		if i >= len(parts) {
			return ""
		}

		return strings.TrimSpace(parts[i])
	}

	return &command.DynamicCommand{
		CommandName:     name,
		CommandCategory: category,
		Help:            field(0),
		Title:           field(1),
		Description:     field(2),
		ImageURL:        field(3),
	}
}

type reload struct {
	command.Base
	idx *commandindex.Index
}

func newReload(idx *commandindex.Index) *reload {
	return &reload{
		Base: command.NewAdminBase("reload", CategoryAdmin, "Reload the configuration and rebuild the command index."),
		idx:  idx,
	}
}

func (c *reload) Run(ctx context.Context, inv *command.Invocation) error {
	if err := c.Authorize(inv); err != nil {
		return err
	}

	if err := c.idx.Reload(ctx); err != nil {
		return err
	}

	return inv.Replyf("Reloaded, %d commands.", c.idx.Len())
}

type shutdown struct {
	command.Base
	cancel context.CancelFunc
}

func newShutdown(cancel context.CancelFunc) *shutdown {
	return &shutdown{
		Base:   command.NewAdminBase("shutdown", CategoryAdmin, "Stop the bot."),
		cancel: cancel,
	}
}

func (c *shutdown) Run(_ context.Context, inv *command.Invocation) error {
	if err := c.Authorize(inv); err != nil {
		return err
	}

	if err := inv.Replyf("Shutting down."); err != nil {
		return err
	}

	c.cancel()

	return nil
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builtin

import (
	"context"
	"fmt"
	"strconv"

	"github.com/matt-FFFFFF/hifumi"
	"github.com/matt-FFFFFF/hifumi/internal/command"
	"github.com/matt-FFFFFF/hifumi/internal/commandindex"
)

type about struct {
	command.Base
	idx *commandindex.Index
}

func newAbout(idx *commandindex.Index) *about {
	return &about{
		Base: command.NewBase("about", CategoryGeneral, "Show information about the bot."),
		idx:  idx,
	}
}

func (c *about) Run(_ context.Context, inv *command.Invocation) error {
	s := c.idx.Settings()

	if err := inv.Replyf("%s %s (commit: %s)", s.BotName, hifumi.Version, hifumi.Commit); err != nil {
		return err
	}

	if s.About != "" {
		if err := inv.Replyf("%s", s.About); err != nil {
			return err
		}
	}

	return inv.Replyf("%d commands available, use %shelp to list them.", c.idx.Len(), s.Prefix)
}

type helpCmd struct {
	command.Base
	idx *commandindex.Index
}

func newHelp(idx *commandindex.Index) *helpCmd {
	return &helpCmd{
		Base: command.NewBase("help", CategoryGeneral, "List commands. Usage: help [category] [page]"),
		idx:  idx,
	}
}

func (c *helpCmd) Run(_ context.Context, inv *command.Invocation) error {
	if len(inv.Args) == 0 {
		return c.idx.HelpRootPage().WriteText(inv.Out)
	}

	category := inv.Args[0]
	number := 1

	if len(inv.Args) > 1 {
		n, err := strconv.Atoi(inv.Args[1])
		if err != nil {
			return inv.Replyf("Page must be a number, got %q.", inv.Args[1])
		}

		number = n
	}

	pages := c.idx.HelpPages()[category]
	if len(pages) == 0 {
		return inv.Replyf("Unknown category %q. Use %shelp to list categories.", category, c.idx.Settings().Prefix)
	}

	page, ok := c.idx.HelpPage(category, number)
	if !ok {
		return inv.Replyf("Page %d does not exist, %s has %d.", number, category, len(pages))
	}

	return page.WriteText(inv.Out)
}

const warezText = `Piracy is not supported here.
Do not ask for, share or link to BIOS files, game images or other copyrighted material.
Dump them from hardware you own.`

type warez struct {
	command.Base
}

func newWarez() *warez {
	return &warez{Base: command.NewBase("warez", CategoryGeneral, "Show the piracy policy.")}
}

func (c *warez) Run(_ context.Context, inv *command.Invocation) error {
	_, err := fmt.Fprintln(inv.Out, warezText)
	return err
}

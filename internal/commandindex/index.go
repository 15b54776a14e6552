// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandindex

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/matt-FFFFFF/hifumi/internal/command"
	"github.com/matt-FFFFFF/hifumi/internal/config"
	"github.com/matt-FFFFFF/hifumi/internal/ctxlog"
	"github.com/matt-FFFFFF/hifumi/internal/help"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ConfigSource supplies the settings and the persisted dynamic commands.
// *config.Manager satisfies it.
type ConfigSource interface {
	Settings() config.Settings
	DynamicCommands() []*command.DynamicCommand
	// ReplaceDynamicCommands persists cmds and makes them current.
	ReplaceDynamicCommands(ctx context.Context, cmds []*command.DynamicCommand) error
	// Reload re-reads the persisted configuration.
	Reload(ctx context.Context) error
}

// BuiltinFactory creates one built-in command. Factories run on every rebuild
// and receive the index so commands such as help can read it when they run.
type BuiltinFactory func(idx *Index) command.Command

// Index is the name to command mapping of the bot.
// It is safe for concurrent use.
type Index struct {
	src      ConfigSource
	builtins []BuiltinFactory

	// writeMu serialises add, delete and reload so concurrent edits are not lost.
	writeMu sync.Mutex

	mu         sync.RWMutex
	settings   config.Settings
	commands   map[string]command.Command
	categories map[string][]string
	pages      *help.Pages
}

// New creates an index over src and rebuilds it.
func New(ctx context.Context, src ConfigSource, builtins ...BuiltinFactory) *Index {
	idx := &Index{
		src:      src,
		builtins: slices.Clone(builtins),
	}
	idx.Rebuild(ctx)

	return idx
}

// Rebuild replaces the whole mapping with the built-in commands plus the
// dynamic commands of the source, then regenerates the help pages.
// A dynamic command named like a built-in replaces the built-in.
func (idx *Index) Rebuild(ctx context.Context) {
	settings := idx.src.Settings()
	cmds := make(map[string]command.Command, len(idx.builtins))

	for _, f := range idx.builtins {
		c := f(idx)
		if c == nil {
			continue
		}

		if _, dup := cmds[c.Name()]; dup {
			ctxlog.Warn(ctx, "duplicate built-in command, keeping the last one", "command", c.Name())
		}

		cmds[c.Name()] = c
	}

	for _, dc := range idx.src.DynamicCommands() {
		if prev, ok := cmds[dc.Name()]; ok {
			if _, wasDynamic := prev.(*command.DynamicCommand); !wasDynamic {
				ctxlog.Warn(ctx, "dynamic command shadows a built-in command", "command", dc.Name())
			}
		}

		cmds[dc.Name()] = dc
	}

	categories := categorize(cmds, collatorTag(settings.Locale))
	pages := help.Build(help.Options{BotName: settings.BotName, Prefix: settings.Prefix}, helpCategories(cmds, categories, collatorTag(settings.Locale)))

	idx.mu.Lock()
	idx.settings = settings
	idx.commands = cmds
	idx.categories = categories
	idx.pages = pages
	idx.mu.Unlock()

	ctxlog.Debug(ctx, "command index rebuilt", "commands", len(cmds), "categories", len(categories))
}

// Reload re-reads the configuration source and rebuilds.
// On error the index is left unchanged.
func (idx *Index) Reload(ctx context.Context) error {
	idx.writeMu.Lock()
	defer idx.writeMu.Unlock()

	if err := idx.src.Reload(ctx); err != nil {
		return err
	}

	idx.Rebuild(ctx)

	return nil
}

// Settings returns the settings captured by the last rebuild.
func (idx *Index) Settings() config.Settings {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.settings
}

// All returns every command name, sorted.
func (idx *Index) All() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return slices.Sorted(maps.Keys(idx.commands))
}

// Len returns the number of commands.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.commands)
}

// IsCommand reports whether name is a command.
func (idx *Index) IsCommand(name string) bool {
	return idx.Command(name) != nil
}

// IsDynamicCommand reports whether name is a dynamic command.
func (idx *Index) IsDynamicCommand(name string) bool {
	return idx.DynamicCommand(name) != nil
}

// Command returns the command called name, or nil.
func (idx *Index) Command(name string) command.Command {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.commands[name]
}

// DynamicCommand returns the dynamic command called name, or nil if there is
// no such command or it is a built-in.
func (idx *Index) DynamicCommand(name string) *command.DynamicCommand {
	dc, ok := idx.Command(name).(*command.DynamicCommand)
	if !ok {
		return nil
	}

	return dc
}

// AddCommand stores dc, replacing a dynamic command of the same name, saves
// the configuration and rebuilds. The index is unchanged if the save fails.
func (idx *Index) AddCommand(ctx context.Context, dc *command.DynamicCommand) error {
	idx.writeMu.Lock()
	defer idx.writeMu.Unlock()

	cmds := idx.src.DynamicCommands()

	i := slices.IndexFunc(cmds, func(c *command.DynamicCommand) bool {
		return c.Name() == dc.Name()
	})
	if i >= 0 {
		cmds[i] = dc.Clone()
	} else {
		cmds = append(cmds, dc.Clone())
	}

	if err := idx.src.ReplaceDynamicCommands(ctx, cmds); err != nil {
		return err
	}

	ctxlog.Info(ctx, "dynamic command saved", "command", dc.Name(), "replaced", i >= 0)
	idx.Rebuild(ctx)

	return nil
}

// DeleteCommand removes the dynamic command called name, saves the
// configuration and rebuilds. Deleting an unknown name is a no-op.
func (idx *Index) DeleteCommand(ctx context.Context, name string) error {
	idx.writeMu.Lock()
	defer idx.writeMu.Unlock()

	cmds := idx.src.DynamicCommands()

	i := slices.IndexFunc(cmds, func(c *command.DynamicCommand) bool {
		return c.Name() == name
	})
	if i < 0 {
		ctxlog.Debug(ctx, "no dynamic command to delete", "command", name)
		return nil
	}

	if err := idx.src.ReplaceDynamicCommands(ctx, slices.Delete(cmds, i, i+1)); err != nil {
		return err
	}

	ctxlog.Info(ctx, "dynamic command deleted", "command", name)
	idx.Rebuild(ctx)

	return nil
}

// CategorizedCommandNames returns the command names of each category, in collation order.
func (idx *Index) CategorizedCommandNames() map[string][]string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make(map[string][]string, len(idx.categories))
	for k, v := range idx.categories {
		out[k] = slices.Clone(v)
	}

	return out
}

// HelpPages returns the pages of every category.
func (idx *Index) HelpPages() map[string][]*help.Page {
	return idx.Pages().All()
}

// HelpRootPage returns the page listing all categories.
func (idx *Index) HelpRootPage() *help.Page {
	return idx.Pages().Root()
}

// HelpPage returns page number (1-based) of category.
func (idx *Index) HelpPage(category string, number int) (*help.Page, bool) {
	return idx.Pages().Page(category, number)
}

// Pages returns the help pages of the last rebuild.
func (idx *Index) Pages() *help.Pages {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.pages
}

func collatorTag(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}

	return tag
}

func categorize(cmds map[string]command.Command, tag language.Tag) map[string][]string {
	out := make(map[string][]string)

	for name, c := range cmds {
		out[c.Category()] = append(out[c.Category()], name)
	}

	col := collate.New(tag)
	for _, names := range out {
		col.SortStrings(names)
	}

	return out
}

func helpCategories(cmds map[string]command.Command, categories map[string][]string, tag language.Tag) []help.Category {
	order := slices.Collect(maps.Keys(categories))
	collate.New(tag).SortStrings(order)

	out := make([]help.Category, 0, len(order))

	for _, name := range order {
		entries := make([]help.Entry, 0, len(categories[name]))
		for _, cmdName := range categories[name] {
			entries = append(entries, help.Entry{Name: cmdName, HelpText: cmds[cmdName].HelpText()})
		}

		out = append(out, help.Category{Name: name, Entries: entries})
	}

	return out
}

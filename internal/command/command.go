// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

var (
	// ErrPermissionDenied is returned when a non-admin invokes an admin command.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrUsage is returned when a command is invoked with bad arguments.
	ErrUsage = errors.New("invalid usage")
)

// Command is a named bot command with a help entry.
type Command interface {
	// Name is the unique key the command is invoked by.
	Name() string
	// Category groups the command on the help pages.
	Category() string
	// HelpText is the one line shown on the help pages.
	HelpText() string
	// Run executes the command.
	Run(ctx context.Context, inv *Invocation) error
}

// Invocation carries one parsed message to a command handler.
type Invocation struct {
	// Name is the command name as typed, without the prefix.
	Name string
	// Args are the whitespace separated tokens following the name.
	Args []string
	// Text is the message after the name with its spacing and line breaks
	// kept. It may be empty when the caller only sets Args.
	Text string
	// Sender identifies who sent the message.
	Sender string
	// Admin is true when the sender may run admin commands.
	Admin bool
	// Out receives the reply.
	Out io.Writer
}

// Replyf writes a formatted line to the invocation output.
func (inv *Invocation) Replyf(format string, args ...any) error {
	_, err := fmt.Fprintf(inv.Out, format+"\n", args...)
	return err
}

// TextAfter returns the message text following the first n arguments.
// Without Text it falls back to the remaining Args joined by single spaces.
func (inv *Invocation) TextAfter(n int) string {
	if inv.Text == "" {
		if n >= len(inv.Args) {
			return ""
		}

		return strings.Join(inv.Args[n:], " ")
	}

	rest := inv.Text

	for range n {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)

		i := strings.IndexFunc(rest, unicode.IsSpace)
		if i < 0 {
			return ""
		}

		rest = rest[i:]
	}

	return strings.TrimLeftFunc(rest, unicode.IsSpace)
}

// NewErrUsage wraps ErrUsage with the expected usage line.
func NewErrUsage(usage string) error {
	return fmt.Errorf("%w: %s", ErrUsage, usage)
}

// Base holds the fields common to built-in commands.
// Embed it and implement Run.
type Base struct {
	name     string
	category string
	helpText string
	admin    bool
}

// NewBase creates a Base for a command open to everyone.
func NewBase(name, category, helpText string) Base {
	return Base{name: name, category: category, helpText: helpText}
}

// NewAdminBase creates a Base for a command restricted to admins.
func NewAdminBase(name, category, helpText string) Base {
	return Base{name: name, category: category, helpText: helpText, admin: true}
}

// Name implements Command.
func (b Base) Name() string { return b.name }

// Category implements Command.
func (b Base) Category() string { return b.category }

// HelpText implements Command.
func (b Base) HelpText() string { return b.helpText }

// AdminOnly reports whether the command is restricted.
func (b Base) AdminOnly() bool { return b.admin }

// Authorize returns ErrPermissionDenied if the command is restricted and the sender is not an admin.
func (b Base) Authorize(inv *Invocation) error {
	if b.admin && !inv.Admin {
		return fmt.Errorf("%w: %s requires admin", ErrPermissionDenied, b.name)
	}

	return nil
}

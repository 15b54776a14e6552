// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package interpreter

import (
	"context"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/matt-FFFFFF/hifumi/internal/command"
	"github.com/matt-FFFFFF/hifumi/internal/config"
	"github.com/matt-FFFFFF/hifumi/internal/ctxlog"
)

// ErrNoOutput is returned when a message has no reply writer.
var ErrNoOutput = errors.New("message has no reply writer")

// Commands is the part of the command index the interpreter needs.
type Commands interface {
	Command(name string) command.Command
	Settings() config.Settings
}

// Message is one chat message.
type Message struct {
	Sender  string
	Content string
	// Admin grants access to admin only commands.
	Admin bool
	// Reply receives the command output.
	Reply io.Writer
}

// Interpreter dispatches messages to commands.
type Interpreter struct {
	cmds Commands
}

// New creates an interpreter over cmds.
func New(cmds Commands) *Interpreter {
	return &Interpreter{cmds: cmds}
}

// Parse splits content into a command name and its arguments.
// ok is false when content does not start with prefix or names nothing.
func Parse(prefix, content string) (name string, args []string, ok bool) {
	content = strings.TrimSpace(content)

	rest, found := strings.CutPrefix(content, prefix)
	if !found {
		return "", nil, false
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 || unicode.IsSpace(rune(rest[0])) {
		return "", nil, false
	}

	return fields[0], fields[1:], true
}

// text returns what follows the command name, spacing kept.
func text(prefix, content, name string) string {
	rest := strings.TrimPrefix(strings.TrimSpace(content), prefix)
	rest = strings.TrimPrefix(rest, name)

	return strings.TrimLeftFunc(rest, unicode.IsSpace)
}

// Handle runs the command named by msg.
// It returns false, nil when the message is not a command.
func (i *Interpreter) Handle(ctx context.Context, msg Message) (bool, error) {
	prefix := i.cmds.Settings().Prefix

	name, args, ok := Parse(prefix, msg.Content)
	if !ok {
		return false, nil
	}

	c := i.cmds.Command(name)
	if c == nil {
		ctxlog.Debug(ctx, "unknown command", "command", name, "sender", msg.Sender)
		return false, nil
	}

	if msg.Reply == nil {
		return true, ErrNoOutput
	}

	ctxlog.Debug(ctx, "running command", "command", name, "sender", msg.Sender, "args", len(args))

	err := c.Run(ctx, &command.Invocation{
		Name:   name,
		Args:   args,
		Text:   text(prefix, msg.Content, name),
		Sender: msg.Sender,
		Admin:  msg.Admin,
		Out:    msg.Reply,
	})
	if err != nil {
		ctxlog.Warn(ctx, "command failed", "command", name, "sender", msg.Sender, "error", err)
	}

	return true, err
}

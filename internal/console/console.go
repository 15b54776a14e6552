// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/hifumi/internal/color"
	"github.com/matt-FFFFFF/hifumi/internal/interpreter"
	"github.com/peterh/liner"
)

// DefaultSender is the sender name of console messages.
const DefaultSender = "console"

var quitWords = []string{"quit", "exit"}

// Prompter reads lines from the operator. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// Handler handles one message. *interpreter.Interpreter satisfies it.
type Handler interface {
	Handle(ctx context.Context, msg interpreter.Message) (bool, error)
}

// Console is the read, dispatch, print loop.
type Console struct {
	prompter Prompter
	handler  Handler
	out      io.Writer
	prompt   string
	sender   string
}

// New creates a console. prompt is usually the bot name.
func New(p Prompter, h Handler, out io.Writer, prompt string) *Console {
	return &Console{
		prompter: p,
		handler:  h,
		out:      out,
		prompt:   prompt + "> ",
		sender:   DefaultSender,
	}
}

// NewLiner returns a liner backed prompter that aborts on Ctrl+C.
func NewLiner() *liner.State {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	return line
}

// Run reads lines until the operator quits, input ends or ctx is cancelled.
// The prompter is closed on return.
func (c *Console) Run(ctx context.Context) error {
	defer func() {
		_ = c.prompter.Close()
	}()

	fmt.Fprintln(c.out, "Type a command, `quit` or `exit` or Ctrl+C to leave.")

	for ctx.Err() == nil {
		input, err := c.prompter.Prompt(c.prompt)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			fmt.Fprintln(c.out, "Aborted")
			return nil
		case errors.Is(err, io.EOF):
			return nil
		default:
			return fmt.Errorf("reading line: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if slices.Contains(quitWords, input) {
			return nil
		}

		c.prompter.AppendHistory(input)
		c.dispatch(ctx, input)
	}

	return nil
}

func (c *Console) dispatch(ctx context.Context, input string) {
	handled, err := c.handler.Handle(ctx, interpreter.Message{
		Sender:  c.sender,
		Content: input,
		Admin:   true,
		Reply:   c.out,
	})

	switch {
	case err != nil:
		fmt.Fprintln(c.out, color.Error("Error: "+err.Error()))
	case !handled:
		fmt.Fprintln(c.out, color.Warning("Not a command: "+input))
	}
}

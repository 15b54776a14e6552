// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidDynamicCommand is returned when a dynamic command definition fails validation.
var ErrInvalidDynamicCommand = errors.New("invalid dynamic command")

// DefaultDynamicCategory is used when a definition omits its category.
const DefaultDynamicCategory = "dynamic"

// DynamicCommand is a user defined command persisted in the bot configuration.
// Running it replies with the stored title, description and image.
type DynamicCommand struct {
	CommandName     string `yaml:"name" hcl:"name,label"`
	CommandCategory string `yaml:"category" hcl:"category,optional"`
	Help            string `yaml:"help_text" hcl:"help_text,optional"`
	Title           string `yaml:"title,omitempty" hcl:"title,optional"`
	Description     string `yaml:"description,omitempty" hcl:"description,optional"`
	ImageURL        string `yaml:"image_url,omitempty" hcl:"image_url,optional"`
}

var _ Command = (*DynamicCommand)(nil)

// Name implements Command.
func (d *DynamicCommand) Name() string { return d.CommandName }

// Category implements Command. An empty category falls back to DefaultDynamicCategory.
func (d *DynamicCommand) Category() string {
	if d.CommandCategory == "" {
		return DefaultDynamicCategory
	}

	return d.CommandCategory
}

// HelpText implements Command.
func (d *DynamicCommand) HelpText() string { return d.Help }

// Run writes the stored reply to the invocation output.
func (d *DynamicCommand) Run(_ context.Context, inv *Invocation) error {
	var sb strings.Builder

	if d.Title != "" {
		sb.WriteString("**")
		sb.WriteString(d.Title)
		sb.WriteString("**\n")
	}

	if d.Description != "" {
		sb.WriteString(d.Description)
		sb.WriteString("\n")
	}

	if d.ImageURL != "" {
		sb.WriteString(d.ImageURL)
		sb.WriteString("\n")
	}

	_, err := inv.Out.Write([]byte(sb.String()))

	return err
}

// Clone returns a copy of the definition.
func (d *DynamicCommand) Clone() *DynamicCommand {
	c := *d
	return &c
}

// Validate reports every problem with the definition.
// prefix is the command prefix of the bot; names may not start with it.
func (d *DynamicCommand) Validate(prefix string) error {
	var result *multierror.Error

	switch {
	case d.CommandName == "":
		result = multierror.Append(result, errors.New("name must not be empty"))
	case strings.IndexFunc(d.CommandName, unicode.IsSpace) >= 0:
		result = multierror.Append(result, fmt.Errorf("name %q must not contain whitespace", d.CommandName))
	case prefix != "" && strings.HasPrefix(d.CommandName, prefix):
		result = multierror.Append(result, fmt.Errorf("name %q must not start with the prefix %q", d.CommandName, prefix))
	}

	if strings.IndexFunc(d.CommandCategory, unicode.IsSpace) >= 0 {
		result = multierror.Append(result, fmt.Errorf("category %q must not contain whitespace", d.CommandCategory))
	}

	if d.Title == "" && d.Description == "" && d.ImageURL == "" {
		result = multierror.Append(result, errors.New("at least one of title, description or image_url must be set"))
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidDynamicCommand, d.CommandName, err)
	}

	return nil
}

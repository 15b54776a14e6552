// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/hifumi/internal/command"
	"golang.org/x/text/language"
)

const (
	// DefaultPrefix is the command prefix used when none is configured.
	DefaultPrefix = ">"
	// DefaultBotName is used in help page titles when none is configured.
	DefaultBotName = "HifumiBot"
	// DefaultLocale selects the collation of command names.
	DefaultLocale = "en"
)

var (
	// ErrInvalidConfig is returned when the configuration fails validation.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrDuplicateDynamicCommand is returned when two dynamic commands share a name.
	ErrDuplicateDynamicCommand = errors.New("duplicate dynamic command")
)

// Config is the persisted bot configuration.
type Config struct {
	Prefix          string                    `yaml:"prefix" hcl:"prefix,optional"`
	BotName         string                    `yaml:"bot_name" hcl:"bot_name,optional"`
	Locale          string                    `yaml:"locale" hcl:"locale,optional"`
	About           string                    `yaml:"about,omitempty" hcl:"about,optional"`
	DynamicCommands []*command.DynamicCommand `yaml:"dynamic_commands" hcl:"dynamic_command,block"`
}

// Default returns a configuration with every default applied and no dynamic commands.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()

	return c
}

// ApplyDefaults fills empty settings.
func (c *Config) ApplyDefaults() {
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}

	if c.BotName == "" {
		c.BotName = DefaultBotName
	}

	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.DynamicCommands = CloneDynamicCommands(c.DynamicCommands)

	return &out
}

// LanguageTag parses the configured locale, falling back to English.
func (c *Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}

	return tag
}

// Validate reports every problem with the configuration.
func (c *Config) Validate() error {
	var result *multierror.Error

	if _, err := language.Parse(c.Locale); err != nil {
		result = multierror.Append(result, fmt.Errorf("locale %q: %w", c.Locale, err))
	}

	seen := make(map[string]struct{}, len(c.DynamicCommands))

	for i, dc := range c.DynamicCommands {
		if dc == nil {
			result = multierror.Append(result, fmt.Errorf("dynamic command %d is empty", i))
			continue
		}

		if err := dc.Validate(c.Prefix); err != nil {
			result = multierror.Append(result, err)
		}

		if _, dup := seen[dc.CommandName]; dup {
			result = multierror.Append(result, fmt.Errorf("%w: %q", ErrDuplicateDynamicCommand, dc.CommandName))
		}

		seen[dc.CommandName] = struct{}{}
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	return nil
}

// CloneDynamicCommands deep copies a slice of definitions, dropping nil entries.
func CloneDynamicCommands(in []*command.DynamicCommand) []*command.DynamicCommand {
	out := make([]*command.DynamicCommand, 0, len(in))

	for _, dc := range in {
		if dc != nil {
			out = append(out, dc.Clone())
		}
	}

	return out
}

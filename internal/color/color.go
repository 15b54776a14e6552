// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Code is an ANSI SGR parameter.
type Code int

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
	reset      = "\033[0m"
	prefix     = "\033["
	suffix     = "m"
)

// Codes used by the log handler and the console.
const (
	Bold        Code = 1
	FgRed       Code = 31
	FgYellow    Code = 33
	FgBlue      Code = 34
	FgCyan      Code = 36
	FgWhite     Code = 37
	FgHiMagenta Code = 95
	FgHiWhite   Code = 97
)

var enabled = isColorCapable()

// Colorize wraps str in the escape sequence for codes followed by a reset.
// It returns str unchanged when color is disabled or no codes are given.
func Colorize(str string, codes ...Code) string {
	if !enabled || len(codes) == 0 {
		return str
	}

	params := make([]string, len(codes))
	for i, c := range codes {
		params[i] = strconv.Itoa(int(c))
	}

	return prefix + strings.Join(params, ";") + suffix + str + reset
}

// Error renders a console error line.
func Error(str string) string {
	return Colorize(str, Bold, FgRed)
}

// Warning renders a console notice, such as a line that is not a command.
func Warning(str string) string {
	return Colorize(str, FgYellow)
}

// Enabled reports whether color output is enabled.
//
// NO_COLOR always wins. Otherwise FORCE_COLOR enables color, and failing
// that color is enabled only when stdout is a terminal.
func Enabled() bool {
	return enabled
}

// SetEnabled overrides terminal detection, for example when the output is
// redirected into a TUI buffer.
func SetEnabled(v bool) {
	enabled = v
}

func isColorCapable() bool {
	if os.Getenv(NoColor) != "" {
		return false
	}

	if os.Getenv(ForceColor) != "" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}

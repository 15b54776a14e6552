// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color decides whether hifumi writes ANSI colors and applies them.
// NO_COLOR disables color, FORCE_COLOR enables it, otherwise color is used
// only when stdout is a terminal.
package color

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tui provides an interactive Terminal User Interface (TUI) for browsing
// the help pages of the bot. The first tab is the root page listing every
// category, the remaining tabs are the categories in help order.
//
// Left and right switch category, up and down (or p and n) switch page inside
// a category and q quits.
package tui

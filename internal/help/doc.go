// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package help renders the bot help pages.
//
// Each category is split into pages of CommandsPerPage entries, every page
// titled with its position ("Page 2 / 3"). A single root page lists the
// categories and explains how to browse them. Pages are rebuilt from scratch
// whenever the command index changes.
package help

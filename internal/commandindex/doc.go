// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commandindex maps command names to commands and keeps the help pages
// in step with that mapping.
//
// The index is rebuilt as a whole: a fixed list of built-in commands followed by
// the dynamic commands read from the configuration source, then the help pages.
// Adding or deleting a dynamic command writes the configuration first and then
// rebuilds; there is no partial update.
package commandindex

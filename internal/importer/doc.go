// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package importer fetches packs of dynamic commands and adds them to the command index.
//
// Sources use Hashicorp's go-getter syntax, so a pack can be a local path,
// an HTTP URL or a file inside a git repository.
// See https://github.com/hashicorp/go-getter.
package importer

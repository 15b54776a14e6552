// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package watch reloads the command index when the configuration file changes on disk.
package watch

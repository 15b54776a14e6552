// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package app wires the configuration, the command index and the interpreter together.
package app

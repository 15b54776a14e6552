// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package interpreter turns chat messages into command invocations.
// A message is handled when it starts with the configured prefix and
// names a command in the index.
package interpreter

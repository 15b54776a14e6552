// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package command defines the Command interface shared by built-in and dynamic
// bot commands, the Invocation passed to a handler, and the DynamicCommand type
// whose definitions are persisted in the bot configuration.
package command

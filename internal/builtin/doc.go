// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package builtin contains the commands compiled into the bot. Factories
// returns them in the form the command index rebuilds from.
package builtin

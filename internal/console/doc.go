// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package console is a local line editor that feeds chat style messages to the interpreter.
// Every line is sent as an admin message so the operator can manage dynamic commands.
package console

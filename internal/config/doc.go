// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads and persists the bot configuration, including the
// dynamic command definitions.
//
// The file format follows the extension: ".yaml" and ".yml" files are YAML,
// ".hcl" files are HCL. HCL files may reference environment variables as
// env.NAME. Writes are atomic and keep the format of the file.
package config

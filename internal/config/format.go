// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Format is a configuration file encoding.
type Format int

const (
	// FormatYAML is selected by the .yaml and .yml extensions.
	FormatYAML Format = iota
	// FormatHCL is selected by the .hcl extension.
	FormatHCL
)

var (
	// ErrUnsupportedFormat is returned for a file extension that is neither YAML nor HCL.
	ErrUnsupportedFormat = errors.New("unsupported configuration file format")
	// ErrDecode is returned when a configuration file cannot be decoded.
	ErrDecode = errors.New("failed to decode configuration")
	// ErrEncode is returned when a configuration cannot be encoded.
	ErrEncode = errors.New("failed to encode configuration")
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatHCL:
		return "hcl"
	default:
		return "unknown"
	}
}

// FormatFromPath selects a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Decode parses data in the given format. filename is only used in diagnostics.
func Decode(f Format, filename string, data []byte) (*Config, error) {
	cfg := &Config{}

	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Join(ErrDecode, err)
		}
	case FormatHCL:
		file, diags := hclsyntax.ParseConfig(data, filename, hcl.InitialPos)
		if diags.HasErrors() {
			return nil, errors.Join(ErrDecode, diags)
		}

		if diags := gohcl.DecodeBody(file.Body, evalContext(), cfg); diags.HasErrors() {
			return nil, errors.Join(ErrDecode, diags)
		}
	default:
		return nil, ErrUnsupportedFormat
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// Encode serialises the configuration in the given format.
// HCL output contains literal values only; expressions from the source file are not kept.
func Encode(f Format, cfg *Config) ([]byte, error) {
	switch f {
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, errors.Join(ErrEncode, err)
		}

		return data, nil
	case FormatHCL:
		file := hclwrite.NewEmptyFile()
		gohcl.EncodeIntoBody(cfg, file.Body())

		return file.Bytes(), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// evalContext exposes the process environment to HCL files as the env object.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}

		vars[k] = cty.StringVal(v)
	}

	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}

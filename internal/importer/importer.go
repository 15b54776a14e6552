// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-getter/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/hifumi/internal/command"
	"github.com/matt-FFFFFF/hifumi/internal/config"
	"github.com/matt-FFFFFF/hifumi/internal/ctxlog"
)

var (
	// ErrFetch is returned when the source cannot be downloaded or read.
	ErrFetch = errors.New("failed to fetch dynamic commands")
	// ErrDecode is returned when the document is not a list of dynamic commands.
	ErrDecode = errors.New("failed to decode dynamic commands")
	// ErrInvalidPack is returned when one or more entries of a pack are invalid.
	ErrInvalidPack = errors.New("invalid dynamic command pack")
)

// Index is the part of the command index an import needs.
type Index interface {
	Settings() config.Settings
	IsCommand(name string) bool
	IsDynamicCommand(name string) bool
	AddCommand(ctx context.Context, dc *command.DynamicCommand) error
}

// Fetch downloads src and decodes the dynamic commands it contains.
func Fetch(ctx context.Context, src string) ([]*command.DynamicCommand, error) {
	data, err := getURL(ctx, src)
	if err != nil {
		return nil, err
	}

	return Decode(data)
}

// Decode reads either a YAML list of dynamic commands or a configuration
// document with a dynamic_commands key. The shape of the top level node decides.
func Decode(data []byte) ([]*command.DynamicCommand, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}

	switch doc.(type) {
	case nil:
		return nil, nil

	case []any:
		var cmds []*command.DynamicCommand
		if err := yaml.Unmarshal(data, &cmds); err != nil {
			return nil, errors.Join(ErrDecode, err)
		}

		return config.CloneDynamicCommands(cmds), nil

	case map[string]any:
		cfg, err := config.Decode(config.FormatYAML, "pack.yaml", data)
		if err != nil {
			return nil, errors.Join(ErrDecode, err)
		}

		return config.CloneDynamicCommands(cfg.DynamicCommands), nil

	default:
		return nil, fmt.Errorf("%w: expected a list or a mapping, got %T", ErrDecode, doc)
	}
}

// Import validates every entry of cmds and then adds them one at a time.
// Nothing is added when an entry is invalid or would replace a built-in command.
// It returns the number of commands added before any save failure.
func Import(ctx context.Context, idx Index, cmds []*command.DynamicCommand) (int, error) {
	prefix := idx.Settings().Prefix

	var result *multierror.Error

	seen := make(map[string]struct{}, len(cmds))

	for _, dc := range cmds {
		if err := dc.Validate(prefix); err != nil {
			result = multierror.Append(result, err)
			continue
		}

		if idx.IsCommand(dc.Name()) && !idx.IsDynamicCommand(dc.Name()) {
			result = multierror.Append(result, fmt.Errorf("%q would replace a built-in command", dc.Name()))
		}

		if _, dup := seen[dc.Name()]; dup {
			result = multierror.Append(result, fmt.Errorf("%w: %q", config.ErrDuplicateDynamicCommand, dc.Name()))
		}

		seen[dc.Name()] = struct{}{}
	}

	if err := result.ErrorOrNil(); err != nil {
		return 0, errors.Join(ErrInvalidPack, err)
	}

	for i, dc := range cmds {
		if err := idx.AddCommand(ctx, dc); err != nil {
			return i, err
		}

		ctxlog.Debug(ctx, "imported dynamic command", "command", dc.Name())
	}

	return len(cmds), nil
}

// getURL retrieves the content from the specified URL using Hashicorp's go-getter.
// It removes the temporary directory after reading its content.
func getURL(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, ErrFetch
	}

	tmpDir, err := os.MkdirTemp("", "hifumi-getter-*")
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	cli := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     url,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	var fileName string
	// Remote sources are fetched as a directory and the file is read from it.
	// https://github.com/hashicorp/go-getter/issues/98
	if ok, err := getter.Detect(req, &getter.FileGetter{}); !ok || err != nil {
		if err != nil {
			return nil, errors.Join(ErrFetch, err)
		}

		var newURL string

		newURL, fileName = splitFileNameFromGetterURL(url)
		if newURL == "" || fileName == "" {
			return nil, fmt.Errorf("%w: invalid URL format: %s", ErrFetch, url)
		}

		req.Src = newURL
	}

	if fileName == "" {
		req.Src = filepath.Dir(url)
		fileName = filepath.Base(url)
	}

	res, err := cli.Get(ctx, req)
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, fileName))
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	return data, nil
}

const (
	goGetterPathSeparator = "//"
	goGetterRefSeparator  = "?"
	minimumGetterParts    = 3 // scheme, host and path
)

// splitFileNameFromGetterURL splits a go-getter URL into the directory URL and
// the file name, keeping any query string on the directory URL.
func splitFileNameFromGetterURL(url string) (string, string) {
	var ref string

	parts := strings.Split(url, goGetterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]
	if before, after, found := strings.Cut(last, goGetterRefSeparator); found {
		ref = after
		last = before
	}

	if filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)
	parts[len(parts)-1] = filepath.Dir(last)

	if parts[len(parts)-1] == "." {
		parts = parts[:len(parts)-1]
	}

	newURL := strings.Join(parts, goGetterPathSeparator)

	if ref != "" {
		newURL += goGetterRefSeparator + ref
	}

	return newURL, fileName
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/matt-FFFFFF/hifumi/internal/command"
	"github.com/matt-FFFFFF/hifumi/internal/ctxlog"
	"github.com/spf13/afero"
)

var (
	// ErrReadConfig is returned when the configuration file cannot be read.
	ErrReadConfig = errors.New("failed to read configuration file")
	// ErrWriteConfig is returned when the configuration file cannot be written.
	ErrWriteConfig = errors.New("failed to write configuration file")
)

const (
	tmpSuffix = ".tmp"
	fileMode  = 0o644
	dirMode   = 0o755
)

// Settings are the configuration values the command index needs besides the dynamic commands.
type Settings struct {
	Prefix  string
	BotName string
	Locale  string
	About   string
}

// Load reads and validates the configuration at path.
// A missing file yields the default configuration.
func Load(ctx context.Context, path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(FsFactory(), path)
	if errors.Is(err, os.ErrNotExist) {
		ctxlog.Debug(ctx, "configuration file not found, using defaults", "path", path)
		return Default(), nil
	}

	if err != nil {
		return nil, errors.Join(ErrReadConfig, err)
	}

	cfg, err := Decode(format, path, data)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "configuration loaded", "path", path, "format", format.String(), "dynamic_commands", len(cfg.DynamicCommands))

	return cfg, nil
}

// Write persists cfg at path atomically, in the format selected by the extension.
func Write(ctx context.Context, path string, cfg *Config) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Encode(format, cfg)
	if err != nil {
		return err
	}

	fs := FsFactory()

	if err := fs.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return errors.Join(ErrWriteConfig, err)
	}

	tmp := path + tmpSuffix
	if err := afero.WriteFile(fs, tmp, data, fileMode); err != nil {
		return errors.Join(ErrWriteConfig, err)
	}

	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return errors.Join(ErrWriteConfig, err)
	}

	ctxlog.Debug(ctx, "configuration written", "path", path, "bytes", len(data))

	return nil
}

// Manager owns the configuration file and the currently loaded configuration.
// It is safe for concurrent use.
type Manager struct {
	mu   sync.RWMutex
	path string
	cfg  *Config
}

// Open loads the configuration at path into a new Manager.
func Open(ctx context.Context, path string) (*Manager, error) {
	cfg, err := Load(ctx, path)
	if err != nil {
		return nil, err
	}

	return &Manager{path: path, cfg: cfg}, nil
}

// NewManager wraps an already loaded configuration. Nothing is read from path until Reload.
func NewManager(path string, cfg *Config) *Manager {
	if cfg == nil {
		cfg = Default()
	}

	return &Manager{path: path, cfg: cfg}
}

// Path returns the configuration file path.
func (m *Manager) Path() string {
	return m.path
}

// Config returns a copy of the current configuration.
func (m *Manager) Config() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.cfg.Clone()
}

// Settings returns the scalar settings of the current configuration.
func (m *Manager) Settings() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Settings{
		Prefix:  m.cfg.Prefix,
		BotName: m.cfg.BotName,
		Locale:  m.cfg.Locale,
		About:   m.cfg.About,
	}
}

// DynamicCommands returns copies of the persisted dynamic command definitions.
func (m *Manager) DynamicCommands() []*command.DynamicCommand {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return CloneDynamicCommands(m.cfg.DynamicCommands)
}

// ReplaceDynamicCommands writes a configuration holding cmds and, once the
// write succeeded, makes it current. On error the current configuration is unchanged.
func (m *Manager) ReplaceDynamicCommands(ctx context.Context, cmds []*command.DynamicCommand) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.cfg.Clone()
	next.DynamicCommands = CloneDynamicCommands(cmds)

	if err := next.Validate(); err != nil {
		return err
	}

	if err := Write(ctx, m.path, next); err != nil {
		return err
	}

	m.cfg = next

	return nil
}

// Save writes the current configuration.
func (m *Manager) Save(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Write(ctx, m.path, m.cfg)
}

// Reload re-reads the configuration file. On error the current configuration is kept.
func (m *Manager) Reload(ctx context.Context) error {
	cfg, err := Load(ctx, m.path)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.cfg = cfg
	m.mu.Unlock()

	return nil
}

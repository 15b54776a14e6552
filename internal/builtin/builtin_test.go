// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builtin

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/hifumi/internal/command"
	"github.com/matt-FFFFFF/hifumi/internal/commandindex"
	"github.com/matt-FFFFFF/hifumi/internal/config"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configPath = "/hifumi.yaml"

type fixture struct {
	fs        afero.Fs
	idx       *commandindex.Index
	cancelled bool
}

func newFixture(t *testing.T, content string) *fixture {
	t.Helper()

	f := &fixture{fs: afero.NewMemMapFs()}
	stubs := gostub.Stub(&config.FsFactory, func() afero.Fs {
		return f.fs
	})
	t.Cleanup(stubs.Reset)

	if content != "" {
		require.NoError(t, afero.WriteFile(f.fs, configPath, []byte(content), 0o644))
	}

	ctx := context.Background()
	m, err := config.Open(ctx, configPath)
	require.NoError(t, err)

	f.idx = commandindex.New(ctx, m, Factories(Options{Shutdown: func() { f.cancelled = true }})...)

	return f
}

func (f *fixture) run(t *testing.T, admin bool, line string) (string, error) {
	t.Helper()

	fields := strings.Fields(line)
	c := f.idx.Command(fields[0])
	require.NotNil(t, c, "command %q not found", fields[0])

	var buf bytes.Buffer

	err := c.Run(context.Background(), &command.Invocation{
		Name:  fields[0],
		Args:  fields[1:],
		Admin: admin,
		Out:   &buf,
	})

	return buf.String(), err
}

func TestFactories(t *testing.T) {
	idx := commandindex.New(context.Background(), config.NewManager(configPath, nil), Factories(Options{})...)
	assert.Equal(t, []string{"about", "dyncmd", "help", "reload", "warez"}, idx.All())

	f := newFixture(t, "")
	assert.True(t, f.idx.IsCommand("shutdown"))
	assert.Equal(t, map[string][]string{
		CategoryAdmin:   {"dyncmd", "reload", "shutdown"},
		CategoryGeneral: {"about", "help", "warez"},
	}, f.idx.CategorizedCommandNames())
}

func TestAbout(t *testing.T) {
	f := newFixture(t, "bot_name: Hifumi\nabout: Helps with emulation.\n")

	out, err := f.run(t, false, "about")
	require.NoError(t, err)
	assert.Contains(t, out, "Hifumi dev")
	assert.Contains(t, out, "Helps with emulation.")
	assert.Contains(t, out, "6 commands available, use >help")
}

func TestWarez(t *testing.T) {
	f := newFixture(t, "")

	out, err := f.run(t, false, "warez")
	require.NoError(t, err)
	assert.Contains(t, out, "Piracy is not supported")
}

func TestHelp(t *testing.T) {
	var sb strings.Builder

	sb.WriteString("dynamic_commands:\n")

	for i := range 12 {
		fmt.Fprintf(&sb, "  - name: faq%02d\n    category: faq\n    description: answer %d\n", i, i)
	}

	f := newFixture(t, sb.String())

	tests := []struct {
		name     string
		line     string
		contains []string
	}{
		{name: "root", line: "help", contains: []string{"== HifumiBot Help ==", "Available Categories", "admin", "faq", "general"}},
		{name: "category", line: "help faq", contains: []string{"Page 1 / 2", ">faq00", ">faq09"}},
		{name: "second page", line: "help faq 2", contains: []string{"Page 2 / 2", ">faq10", ">faq11"}},
		{name: "unknown category", line: "help nope", contains: []string{`Unknown category "nope"`}},
		{name: "page out of range", line: "help faq 3", contains: []string{"Page 3 does not exist, faq has 2."}},
		{name: "bad page", line: "help faq two", contains: []string{`Page must be a number, got "two"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := f.run(t, false, tt.line)
			require.NoError(t, err)

			for _, c := range tt.contains {
				assert.Contains(t, out, c)
			}
		})
	}
}

func TestDynCmd_RequiresAdmin(t *testing.T) {
	f := newFixture(t, "")

	for _, line := range []string{"dyncmd get x", "reload", "shutdown"} {
		_, err := f.run(t, false, line)
		assert.ErrorIs(t, err, command.ErrPermissionDenied, line)
	}

	assert.False(t, f.cancelled)
}

func TestDynCmd_AddGetDelete(t *testing.T) {
	f := newFixture(t, "")

	out, err := f.run(t, true, "dyncmd add bios faq How to dump | BIOS | Dump it yourself. | https://example.com/b.png")
	require.NoError(t, err)
	assert.Contains(t, out, `Saved dynamic command "bios".`)

	dc := f.idx.DynamicCommand("bios")
	require.NotNil(t, dc)
	assert.Equal(t, &command.DynamicCommand{
		CommandName:     "bios",
		CommandCategory: "faq",
		Help:            "How to dump",
		Title:           "BIOS",
		Description:     "Dump it yourself.",
		ImageURL:        "https://example.com/b.png",
	}, dc)

	data, err := afero.ReadFile(f.fs, configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: bios")

	out, err = f.run(t, true, "dyncmd get bios")
	require.NoError(t, err)
	assert.Contains(t, out, "title: BIOS")

	out, err = f.run(t, true, "dyncmd delete bios")
	require.NoError(t, err)
	assert.Contains(t, out, `Deleted dynamic command "bios".`)
	assert.False(t, f.idx.IsCommand("bios"))

	out, err = f.run(t, true, "dyncmd delete bios")
	require.NoError(t, err)
	assert.Contains(t, out, `No dynamic command "bios".`)

	out, err = f.run(t, true, "dyncmd get bios")
	require.NoError(t, err)
	assert.Contains(t, out, `No dynamic command "bios".`)
}

func TestDynCmd_AddKeepsSpacing(t *testing.T) {
	f := newFixture(t, "")

	var buf bytes.Buffer

	err := f.idx.Command("dyncmd").Run(context.Background(), &command.Invocation{
		Name:  "dyncmd",
		Args:  strings.Fields("add rules faq Server rules | Rules | 1. Be nice.\n2. No piracy."),
		Text:  "add rules   faq Server rules | Rules | 1. Be nice.\n2. No piracy.",
		Admin: true,
		Out:   &buf,
	})
	require.NoError(t, err)

	dc := f.idx.DynamicCommand("rules")
	require.NotNil(t, dc)
	assert.Equal(t, "Server rules", dc.Help)
	assert.Equal(t, "1. Be nice.\n2. No piracy.", dc.Description)
}

func TestDynCmd_Errors(t *testing.T) {
	f := newFixture(t, "")

	tests := []struct {
		line    string
		wantErr error
	}{
		{line: "dyncmd", wantErr: command.ErrUsage},
		{line: "dyncmd add bios", wantErr: command.ErrUsage},
		{line: "dyncmd rename a b", wantErr: command.ErrUsage},
		{line: "dyncmd add help general shadow | Help", wantErr: ErrNotDynamic},
		{line: "dyncmd add bios faq only help text", wantErr: command.ErrInvalidDynamicCommand},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := f.run(t, true, tt.line)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.False(t, f.idx.IsCommand("bios"))
}

func TestReload(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, afero.WriteFile(f.fs, configPath, []byte("dynamic_commands:\n  - name: wiki\n    description: see the wiki\n"), 0o644))

	out, err := f.run(t, true, "reload")
	require.NoError(t, err)
	assert.Contains(t, out, "Reloaded, 7 commands.")
	assert.True(t, f.idx.IsDynamicCommand("wiki"))
}

func TestShutdown(t *testing.T) {
	f := newFixture(t, "")

	out, err := f.run(t, true, "shutdown")
	require.NoError(t, err)
	assert.Contains(t, out, "Shutting down.")
	assert.True(t, f.cancelled)
}

func TestParseDynamicCommand(t *testing.T) {
	tests := []struct {
		name string
		text string
		want command.DynamicCommand
	}{
		{
			name: "help only",
			text: "just help",
			want: command.DynamicCommand{CommandName: "n", CommandCategory: "c", Help: "just help"},
		},
		{
			name: "skipped title",
			text: "h | | desc",
			want: command.DynamicCommand{CommandName: "n", CommandCategory: "c", Help: "h", Description: "desc"},
		},
		{
			name: "line breaks kept",
			text: "h | T | first line\n\n  second line |",
			want: command.DynamicCommand{CommandName: "n", CommandCategory: "c", Help: "h", Title: "T", Description: "first line\n\n  second line"},
		},
		{
			name: "empty",
			want: command.DynamicCommand{CommandName: "n", CommandCategory: "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, &tt.want, ParseDynamicCommand("n", "c", tt.text))
		})
	}
}

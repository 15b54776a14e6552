// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/hifumi/internal/help"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPages() *help.Pages {
	faq := help.Category{Name: "faq"}
	for i := range 15 {
		faq.Entries = append(faq.Entries, help.Entry{Name: fmt.Sprintf("q%02d", i), HelpText: "answer"})
	}

	return help.Build(help.Options{BotName: "HifumiBot", Prefix: ">"}, []help.Category{
		faq,
		{Name: "general", Entries: []help.Entry{{Name: "about", HelpText: "about the bot"}}},
	})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, keys ...string) *Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(*Model)
	}

	return m
}

func TestNewModel(t *testing.T) {
	pages := testPages()

	tests := []struct {
		name         string
		category     string
		number       int
		wantCategory string
		wantTitle    string
	}{
		{name: "root", wantTitle: "HifumiBot Help"},
		{name: "unknown category", category: "nope", wantTitle: "HifumiBot Help"},
		{name: "category", category: "faq", number: 1, wantCategory: "faq", wantTitle: "HifumiBot Help - faq - Page 1 / 2"},
		{name: "second page", category: "faq", number: 2, wantCategory: "faq", wantTitle: "HifumiBot Help - faq - Page 2 / 2"},
		{name: "page clamped", category: "faq", number: 9, wantCategory: "faq", wantTitle: "HifumiBot Help - faq - Page 2 / 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(pages, tt.category, tt.number)
			assert.Equal(t, tt.wantCategory, m.Category())
			require.NotNil(t, m.Current())
			assert.Equal(t, tt.wantTitle, m.Current().Title)
		})
	}
}

func TestUpdate_Navigation(t *testing.T) {
	m := NewModel(testPages(), "", 0)

	m = press(m, "right")
	assert.Equal(t, "faq", m.Category())
	assert.Equal(t, "HifumiBot Help - faq - Page 1 / 2", m.Current().Title)

	m = press(m, "down")
	assert.Equal(t, "HifumiBot Help - faq - Page 2 / 2", m.Current().Title)

	m = press(m, "n")
	assert.Equal(t, "HifumiBot Help - faq - Page 2 / 2", m.Current().Title, "stays on the last page")

	m = press(m, "p")
	assert.Equal(t, "HifumiBot Help - faq - Page 1 / 2", m.Current().Title)

	m = press(m, "down", "right")
	assert.Equal(t, "general", m.Category())
	assert.Equal(t, "HifumiBot Help - general - Page 1 / 1", m.Current().Title, "switching category resets the page")

	m = press(m, "right")
	assert.Empty(t, m.Category(), "wraps to the root page")

	m = press(m, "left")
	assert.Equal(t, "general", m.Category())
}

func TestUpdate_Quit(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m := NewModel(testPages(), "", 0)

			var msg tea.KeyMsg

			switch k {
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			default:
				msg = key(k)
			}

			next, cmd := m.Update(msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, next.View())
		})
	}
}

func TestView(t *testing.T) {
	m := NewModel(testPages(), "faq", 1)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})

	view := next.View()
	assert.Contains(t, view, "overview")
	assert.Contains(t, view, "faq")
	assert.Contains(t, view, ">q00")
	assert.Contains(t, view, helpText)
	assert.Equal(t, 80, next.(*Model).width)
}

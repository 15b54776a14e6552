// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const helpText = "←/→ category, ↑/↓ or p/n page, 'q' to quit"

// Init implements bubbletea.Model.Init.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements bubbletea.Model.Update.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case tea.QuitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKeyPress processes keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "right", "l", "tab":
		m.selectTab(m.tab + 1)
	case "left", "h", "shift+tab":
		m.selectTab(m.tab - 1)
	case "down", "n", "j", "pgdown":
		m.paginator.NextPage()
	case "up", "p", "k", "pgup":
		m.paginator.PrevPage()
	}

	return m, nil
}

// View implements bubbletea.Model.View.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var view strings.Builder

	view.WriteString(m.renderTabs())
	view.WriteString("\n")

	if page := m.Current(); page != nil {
		view.WriteString(page.Render(m.styles.Page, m.width))
	}

	view.WriteString("\n")

	if m.paginator.TotalPages > 1 {
		view.WriteString(m.paginator.View())
		view.WriteString("\n")
	}

	view.WriteString(m.styles.Help.Render(helpText))

	return view.String()
}

func (m *Model) renderTabs() string {
	tabs := make([]string, len(m.tabs))

	for i, name := range m.tabs {
		if name == "" {
			name = overviewTab
		}

		if i == m.tab {
			tabs[i] = m.styles.ActiveTab.Render(name)
		} else {
			tabs[i] = m.styles.InactiveTab.Render(name)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

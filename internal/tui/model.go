// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/hifumi/internal/help"
)

const overviewTab = "overview"

// Model is the state of the help browser.
type Model struct {
	pages *help.Pages
	// tabs holds the category of each tab, the root page first.
	tabs      []string
	tab       int
	paginator paginator.Model
	width     int
	height    int
	quitting  bool

	styles *Styles
}

// Styles contains all the styling for the TUI.
type Styles struct {
	Page        help.Styles
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates the default styling for the TUI.
func NewStyles() *Styles {
	return &Styles{
		Page: help.DefaultStyles(),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Underline(true).
			Padding(0, 1),
		InactiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			MarginTop(1),
	}
}

// NewModel creates a browser over pages showing category at page number.
// An empty or unknown category starts on the root page.
func NewModel(pages *help.Pages, category string, number int) *Model {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Render("•")
	p.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("•")

	m := &Model{
		pages:     pages,
		tabs:      append([]string{""}, pages.Categories()...),
		paginator: p,
		styles:    NewStyles(),
	}

	if i := slices.Index(m.tabs, category); i > 0 {
		m.selectTab(i)
		m.paginator.Page = max(0, min(number-1, m.paginator.TotalPages-1))
	} else {
		m.selectTab(0)
	}

	return m
}

// Category returns the selected category, empty on the root page.
func (m *Model) Category() string {
	return m.tabs[m.tab]
}

// Current returns the page on screen.
func (m *Model) Current() *help.Page {
	if m.tab == 0 {
		return m.pages.Root()
	}

	page, _ := m.pages.Page(m.Category(), m.paginator.Page+1)

	return page
}

func (m *Model) selectTab(i int) {
	m.tab = (i + len(m.tabs)) % len(m.tabs)
	m.paginator.Page = 0
	m.paginator.TotalPages = max(1, len(m.pages.Category(m.Category())))
}

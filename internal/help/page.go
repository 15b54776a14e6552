// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is one titled entry on a page.
type Field struct {
	Name  string
	Value string
}

// Page is a rendered help page. Category and Number are empty / zero for the root page.
type Page struct {
	Title       string
	Description string
	Fields      []Field
	Category    string
	Number      int
	Total       int
}

// WriteText writes a plain text rendering of the page.
func (p *Page) WriteText(w io.Writer) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "== %s ==\n", p.Title)

	if p.Description != "" {
		sb.WriteString(p.Description)
		sb.WriteString("\n")
	}

	for _, f := range p.Fields {
		sb.WriteString("\n")
		sb.WriteString(f.Name)
		sb.WriteString("\n")

		for _, line := range strings.Split(strings.TrimRight(f.Value, "\n"), "\n") {
			sb.WriteString("  ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// String returns the plain text rendering.
func (p *Page) String() string {
	var sb strings.Builder
	_ = p.WriteText(&sb)

	return sb.String()
}

// Styles controls the terminal rendering of a page.
type Styles struct {
	Title       lipgloss.Style
	Description lipgloss.Style
	FieldName   lipgloss.Style
	FieldValue  lipgloss.Style
	Frame       lipgloss.Style
}

// DefaultStyles returns the styles used by the console and the help browser.
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Description: lipgloss.NewStyle().Faint(true),
		FieldName:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		FieldValue:  lipgloss.NewStyle().PaddingLeft(2),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
	}
}

// Render returns the page styled for a terminal of the given width.
// A width of zero or less disables wrapping.
func (p *Page) Render(s Styles, width int) string {
	blocks := []string{s.Title.Render(p.Title)}

	if p.Description != "" {
		blocks = append(blocks, s.Description.Render(p.Description))
	}

	for _, f := range p.Fields {
		blocks = append(blocks, "", s.FieldName.Render(f.Name), s.FieldValue.Render(f.Value))
	}

	frame := s.Frame
	if width > 0 {
		frame = frame.Width(width - frame.GetHorizontalFrameSize())
	}

	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

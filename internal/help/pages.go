// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package help

import (
	"fmt"
	"slices"
	"strings"
)

// CommandsPerPage is the maximum number of fields on a category page.
const CommandsPerPage = 10

const noHelpText = "No description."

// Options controls the wording of the generated pages.
type Options struct {
	BotName string
	Prefix  string
}

// Entry is one command to list on a page.
type Entry struct {
	Name     string
	HelpText string
}

// Category is an ordered group of entries.
type Category struct {
	Name    string
	Entries []Entry
}

// Pages is the full set of rendered help pages.
type Pages struct {
	root       *Page
	order      []string
	categories map[string][]*Page
}

// PageCount returns the number of pages needed for n entries.
func PageCount(n int) int {
	return (n + CommandsPerPage - 1) / CommandsPerPage
}

// Build renders every category in the given order, plus the root page.
// Categories without entries produce no pages.
func Build(opts Options, categories []Category) *Pages {
	p := &Pages{
		order:      make([]string, 0, len(categories)),
		categories: make(map[string][]*Page, len(categories)),
	}

	for _, c := range categories {
		if len(c.Entries) == 0 {
			continue
		}

		p.order = append(p.order, c.Name)
		p.categories[c.Name] = buildCategory(opts, c)
	}

	p.root = buildRoot(opts, p.order)

	return p
}

func buildCategory(opts Options, c Category) []*Page {
	total := PageCount(len(c.Entries))
	pages := make([]*Page, 0, total)

	for chunk := range slices.Chunk(c.Entries, CommandsPerPage) {
		page := &Page{
			Title:       fmt.Sprintf("%s Help - %s - Page %d / %d", opts.BotName, c.Name, len(pages)+1, total),
			Description: fmt.Sprintf("Use `%shelp %s [page]` to browse other pages.", opts.Prefix, c.Name),
			Fields:      make([]Field, 0, len(chunk)),
			Category:    c.Name,
			Number:      len(pages) + 1,
			Total:       total,
		}

		for _, e := range chunk {
			value := e.HelpText
			if value == "" {
				value = noHelpText
			}

			page.Fields = append(page.Fields, Field{Name: opts.Prefix + e.Name, Value: value})
		}

		pages = append(pages, page)
	}

	return pages
}

func buildRoot(opts Options, order []string) *Page {
	list := "None"
	if len(order) > 0 {
		list = strings.Join(order, "\n")
	}

	return &Page{
		Title: opts.BotName + " Help",
		Description: fmt.Sprintf(
			"The prefix for all commands is %q.\nTo view available commands use `%shelp <category> [page]`",
			opts.Prefix, opts.Prefix,
		),
		Fields: []Field{{Name: "Available Categories", Value: list}},
	}
}

// Root returns the page listing all categories.
func (p *Pages) Root() *Page {
	return p.root
}

// Categories returns the category names in display order.
func (p *Pages) Categories() []string {
	return slices.Clone(p.order)
}

// Category returns the pages of one category, or nil if unknown.
func (p *Pages) Category(name string) []*Page {
	return slices.Clone(p.categories[name])
}

// Page returns page number (1-based) of a category.
func (p *Pages) Page(category string, number int) (*Page, bool) {
	pages, ok := p.categories[category]
	if !ok || number < 1 || number > len(pages) {
		return nil, false
	}

	return pages[number-1], true
}

// All returns a copy of the category to pages mapping.
func (p *Pages) All() map[string][]*Page {
	out := make(map[string][]*Page, len(p.categories))
	for k, v := range p.categories {
		out[k] = slices.Clone(v)
	}

	return out
}

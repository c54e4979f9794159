// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package site

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
)

//go:embed pages/*.md
var pageFS embed.FS

// NotFound is the page shown for unknown names.
const NotFound = "404"

// Pages renders the embedded markdown pages with glamour.
type Pages struct {
	style     string
	renderers map[int]*glamour.TermRenderer
	cache     map[string]string
}

// NewPages returns a renderer. style is a glamour standard style name
// ("dark", "light", "notty", ...) or "auto" to follow the terminal.
func NewPages(style string) *Pages {
	return &Pages{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
		cache:     make(map[string]string),
	}
}

// Names lists the available pages.
func (p *Pages) Names() []string {
	entries, err := pageFS.ReadDir("pages")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name != NotFound {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Source returns the markdown of a page.
func (p *Pages) Source(name string) (string, bool) {
	data, err := pageFS.ReadFile(path.Join("pages", name+".md"))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Render returns a page wrapped to width. Unknown pages render the 404 page.
func (p *Pages) Render(name string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	key := fmt.Sprintf("%s@%d", name, width)
	if out, ok := p.cache[key]; ok {
		return out, nil
	}

	src, ok := p.Source(name)
	if !ok {
		src, _ = p.Source(NotFound)
	}
	r, err := p.renderer(width)
	if err != nil {
		return src, err
	}
	out, err := r.Render(src)
	if err != nil {
		return src, fmt.Errorf("render %s: %w", name, err)
	}
	out = strings.Trim(out, "\n")
	p.cache[key] = out
	return out, nil
}

func (p *Pages) renderer(width int) (*glamour.TermRenderer, error) {
	if r, ok := p.renderers[width]; ok {
		return r, nil
	}
	styleOpt := glamour.WithAutoStyle()
	if p.style != "" && p.style != "auto" {
		styleOpt = glamour.WithStandardStyle(p.style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	p.renderers[width] = r
	return r, nil
}

// AnchorLine returns the index of the rendered line holding the heading an
// anchor such as "#work" points at, or -1.
func AnchorLine(rendered, anchor string) int {
	want := strings.ToLower(strings.TrimPrefix(anchor, "#"))
	if want == "" {
		return -1
	}
	for i, line := range strings.Split(rendered, "\n") {
		text := strings.TrimSpace(ansi.Strip(line))
		text = strings.TrimSpace(strings.TrimLeft(text, "#"))
		if strings.ToLower(text) == want {
			return i
		}
	}
	return -1
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"
)

// Palette maps rich-text classes to terminal styles. Unknown classes render
// unstyled.
type Palette map[string]lipgloss.Style

// Render turns a line into terminal text styled with pal.
func Render(line Line, pal Palette) string {
	if !line.Rich {
		return line.Content
	}
	return walk(line.Content, func(class, text string) string {
		if style, ok := pal[class]; ok && class != "" {
			return style.Render(text)
		}
		return text
	})
}

// Plain returns the text of a line with all markup removed.
func Plain(line Line) string {
	if !line.Rich {
		return line.Content
	}
	return walk(line.Content, func(_, text string) string { return text })
}

// RenderAll renders every line, separated by newlines.
func RenderAll(lines []Line, pal Palette) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = Render(line, pal)
	}
	return strings.Join(parts, "\n")
}

type frame struct {
	tag   string
	class string
}

// walk tokenizes a fragment, calling paint for every text run with the class
// of the innermost classed ancestor. Block boundaries and <br> become line
// breaks; leading and trailing blank lines are dropped.
func walk(fragment string, paint func(class, text string) string) string {
	var (
		b     strings.Builder
		stack []frame
	)

	breakLine := func() {
		s := b.String()
		if s != "" && !strings.HasSuffix(s, "\n") {
			b.WriteByte('\n')
		}
	}

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or a malformed tail; either way keep what was read.
			return strings.Trim(b.String(), "\n")

		case html.TextToken:
			text := string(z.Text())
			if strings.TrimSpace(text) == "" && strings.Contains(text, "\n") {
				continue
			}
			b.WriteString(paint(currentClass(stack), text))

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "br":
				b.WriteByte('\n')
				continue
			case "div":
				breakLine()
			}
			if tt == html.StartTagToken {
				stack = append(stack, frame{tag: tok.Data, class: classOf(tok)})
			}

		case html.EndTagToken:
			tok := z.Token()
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].tag == tok.Data {
					stack = stack[:i]
					break
				}
			}
			if tok.Data == "div" {
				breakLine()
			}
		}
	}
}

func classOf(tok html.Token) string {
	for _, attr := range tok.Attr {
		if attr.Key == "class" {
			fields := strings.Fields(attr.Val)
			if len(fields) > 0 {
				return fields[0]
			}
		}
	}
	return ""
}

func currentClass(stack []frame) string {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].class != "" {
			return stack[i].class
		}
	}
	return ""
}

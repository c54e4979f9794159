// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package site

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/SwayamPurwar/portfolio-term/internal/util"
)

// BossTitle is the window title shown while the boss screen is up.
const BossTitle = "index.js - Visual Studio Code"

// BossSource is the file the fake editor shows.
const BossSource = `import React from 'react';

const App = () => {
  console.log("Project Deadline: ASAP");
  return (
    <div className="container">
      <h1>Compiling Production Build...</h1>
    </div>
  );
}

// Press ESC twice to return to portfolio`

// BossScreen renders a fake code editor filling width x height.
type BossScreen struct {
	highlighted []string
}

// NewBossScreen highlights BossSource once.
func NewBossScreen(styleName string) *BossScreen {
	return &BossScreen{highlighted: strings.Split(highlight(BossSource, "jsx", styleName), "\n")}
}

// View draws the editor chrome around the highlighted source.
func (b *BossScreen) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	bar := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#CCCCCC")).
		Background(lipgloss.Color("#3C3C3C")).
		Width(width)
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("#858585"))
	status := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#007ACC")).
		Width(width)

	rows := []string{bar.Render(util.TruncateWidth(" "+BossTitle, width))}
	body := height - 2
	for i := 0; i < body; i++ {
		line := ""
		if i < len(b.highlighted) {
			line = b.highlighted[i]
		}
		num := ""
		if i < len(b.highlighted) {
			num = fmt.Sprintf("%3d", i+1)
		}
		rows = append(rows, gutter.Render(util.PadRight(num, 4))+" "+line)
	}
	rows = append(rows, status.Render(util.TruncateWidth(" main  Ln 4, Col 12  UTF-8  JavaScript React", width)))
	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}

func highlight(code, language, styleName string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get(styleName)
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return strings.TrimRight(buf.String(), "\n")
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// inputBox lets the controller drive the text input. The model and the
// controller share one pointer so Bubble Tea's value copies stay in sync.
type inputBox struct {
	ti  textinput.Model
	cmd tea.Cmd
}

func (b *inputBox) Reset() { b.ti.Reset() }

func (b *inputBox) Focus() { b.cmd = b.ti.Focus() }

func (b *inputBox) Blur() { b.ti.Blur() }

func (b *inputBox) SetValue(value string) {
	b.ti.SetValue(value)
	b.ti.CursorEnd()
}

// takeCmd returns the cursor blink command queued by Focus.
func (b *inputBox) takeCmd() tea.Cmd {
	cmd := b.cmd
	b.cmd = nil
	return cmd
}

// logPane is the scrollable output log. GotoBottom pins it; scrolling up by
// hand unpins it until the next pin.
type logPane struct {
	vp     viewport.Model
	pinned bool
}

func (p *logPane) GotoBottom() {
	p.pinned = true
	p.vp.GotoBottom()
}

func (p *logPane) setContent(content string) {
	p.vp.SetContent(content)
	if p.pinned {
		p.vp.GotoBottom()
	}
}

func (p *logPane) scrollUp(n int) {
	p.vp.LineUp(n)
	p.pinned = p.vp.AtBottom()
}

func (p *logPane) scrollDown(n int) {
	p.vp.LineDown(n)
	p.pinned = p.vp.AtBottom()
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// LOG TESTS
// =============================================================================

func TestLog_AppendAndClear(t *testing.T) {
	l := New()
	l.Append("user@swayam:~$ ls")
	l.AppendRich(`<span class="accent">ok</span>`)

	require.Equal(t, 2, l.Len())
	last, ok := l.Last()
	require.True(t, ok)
	assert.True(t, last.Rich)
	assert.Equal(t, "ok", Plain(last))

	rev := l.Revision()
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.NotEqual(t, rev, l.Revision())
	_, ok = l.Last()
	assert.False(t, ok)
}

func TestLog_PendingLifecycle(t *testing.T) {
	l := New()
	l.Append("before")

	l.SetPending(`<span class="sam">S.A.M. &gt;</span> Thinking...`)
	p, ok := l.Pending()
	require.True(t, ok)
	assert.Equal(t, "S.A.M. > Thinking...", Plain(p))
	assert.Equal(t, 1, l.Len(), "pending line is not committed")

	l.SetPending(`<span class="sam">S.A.M. &gt;</span> Gr`)
	l.CommitPending()
	_, ok = l.Pending()
	assert.False(t, ok)
	require.Equal(t, 2, l.Len())
	last, _ := l.Last()
	assert.Equal(t, "S.A.M. > Gr", Plain(last))

	l.SetPending("x")
	l.ClearPending()
	assert.Equal(t, 2, l.Len())
	l.CommitPending()
	assert.Equal(t, 2, l.Len(), "commit without pending is a no-op")
}

func TestLog_ClearsCountsEveryClear(t *testing.T) {
	l := New()
	assert.Zero(t, l.Clears())

	l.Append("a")
	l.Clear()
	l.Append("b")
	l.Append("c")
	assert.Equal(t, uint64(1), l.Clears())

	l.Clear()
	l.Clear()
	assert.Equal(t, uint64(3), l.Clears(), "clearing an empty log still counts")
}

func TestLog_ClearKeepsPending(t *testing.T) {
	l := New()
	l.Append("a")
	l.SetPending("thinking")
	l.Clear()
	_, ok := l.Pending()
	assert.True(t, ok)
}

func TestLog_LinesReturnsCopy(t *testing.T) {
	l := New()
	l.Append("a")
	lines := l.Lines()
	lines[0].Content = "b"
	assert.Equal(t, "a", l.Lines()[0].Content)
}

// =============================================================================
// SANITIZE TESTS
// =============================================================================

func TestAppendRich_StripsUnsafeMarkup(t *testing.T) {
	l := New()
	l.AppendRich(`<span class="accent" style="color:red" onclick="x()">hi</span><script>alert(1)</script><img src=x>`)

	last, _ := l.Last()
	assert.NotContains(t, last.Content, "script")
	assert.NotContains(t, last.Content, "style")
	assert.NotContains(t, last.Content, "onclick")
	assert.NotContains(t, last.Content, "img")
	assert.Contains(t, last.Content, `class="accent"`)
	assert.Equal(t, "hi", Plain(last))
}

func TestEscape_UserInputStaysText(t *testing.T) {
	l := New()
	l.AppendRich(`<span class="you">You:</span> ` + Escape("<b>bold</b> & co"))

	last, _ := l.Last()
	assert.Equal(t, "You: <b>bold</b> & co", Plain(last))
}

// =============================================================================
// RENDER TESTS
// =============================================================================

func TestPlain_BlockStructure(t *testing.T) {
	line := Line{Rich: true, Content: `<div class="muted">--- A ---</div><div><span class="accent">ls</span> list</div><br/><div class="muted">--- B ---</div>`}

	want := strings.Join([]string{"--- A ---", "ls list", "", "--- B ---"}, "\n")
	assert.Equal(t, want, Plain(line))
}

func TestRender_PlainLineUntouched(t *testing.T) {
	line := Line{Content: "<b>not markup</b>"}
	assert.Equal(t, "<b>not markup</b>", Render(line, nil))
}

func TestRender_AppliesPalette(t *testing.T) {
	line := Line{Rich: true, Content: `<span class="accent">ls</span> rest`}
	pal := Palette{ClassAccent: lipgloss.NewStyle().Bold(true)}

	got := Render(line, pal)
	assert.True(t, strings.HasSuffix(got, " rest"), "unclassed text is unstyled: %q", got)
	assert.Contains(t, got, "ls")
}

func TestRenderAll(t *testing.T) {
	lines := []Line{{Content: "one"}, {Content: `<b>two</b>`, Rich: true}}
	assert.Equal(t, "one\ntwo", RenderAll(lines, Palette{}))
}

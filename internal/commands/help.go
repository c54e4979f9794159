// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"

	"github.com/SwayamPurwar/portfolio-term/internal/output"
	"github.com/SwayamPurwar/portfolio-term/internal/util"
)

const helpNameWidth = 9

// HelpFragment renders the help listing as one rich fragment, one section
// per category, hidden verbs omitted.
func HelpFragment(r *Registry) string {
	var b strings.Builder
	for i, category := range categoryOrder {
		cmds := r.ByCategory(category)
		if len(cmds) == 0 {
			continue
		}
		if i > 0 {
			b.WriteString("<br>")
		}
		b.WriteString(`<div class="` + output.ClassMuted + `">--- ` + category + ` ---</div>`)
		for _, cmd := range cmds {
			b.WriteString(`<div><span class="` + output.ClassAccent + `">`)
			b.WriteString(output.Escape(util.PadRight(cmd.Name, helpNameWidth)))
			b.WriteString(`</span>`)
			b.WriteString(output.Escape(cmd.Description))
			b.WriteString(`</div>`)
		}
	}
	return b.String()
}

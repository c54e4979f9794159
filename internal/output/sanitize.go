// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package output

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// Rich text classes understood by Render.
const (
	ClassAccent = "accent"
	ClassMuted  = "muted"
	ClassYou    = "you"
	ClassSam    = "sam"
	ClassAlert  = "alert"
)

var classPattern = regexp.MustCompile(`^[a-z]+( [a-z]+)*$`)

// Policy returns the allow-list applied to every rich fragment: structural
// tags only, styled through class names, never inline CSS or scripts.
func Policy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("div", "span", "br", "b")
	p.AllowAttrs("class").Matching(classPattern).OnElements("div", "span")
	return p
}

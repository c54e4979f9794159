// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"fmt"
)

// ErrEmptyState reports that a query had nothing to show.
var ErrEmptyState = errors.New("nothing to show")

// UsageError reports a verb invoked with missing or invalid arguments.
type UsageError struct {
	Verb  string
	Usage string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: usage: %s", e.Verb, e.Usage)
}

// NotFoundError reports an unknown verb, or an unknown target of a known
// verb (Target set).
type NotFoundError struct {
	Verb   string
	Target string
}

func (e *NotFoundError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s: %s: not found", e.Verb, e.Target)
	}
	return fmt.Sprintf("%s: command not found", e.Verb)
}

// IsNotFound reports whether err is a NotFoundError for an unknown verb.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) && nf.Target == ""
}

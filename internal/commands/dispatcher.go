// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/SwayamPurwar/portfolio-term/internal/util"
)

// Dispatcher runs Command-mode lines against a registry.
type Dispatcher struct {
	registry *Registry
	ctx      *Context
	log      *zap.Logger
}

// NewDispatcher binds a registry to a handler context.
func NewDispatcher(registry *Registry, ctx *Context, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Dispatcher{registry: registry, ctx: ctx, log: log}
	ctx.dispatch = d.Execute
	return d
}

// Registry returns the registry the dispatcher runs against.
func (d *Dispatcher) Registry() *Registry { return d.registry }

// Execute runs one line. The caller lower-cases it first. Every outcome,
// including errors, has already been written to the log when Execute
// returns; the error only classifies it.
func (d *Dispatcher) Execute(line string) error {
	verb, arg := util.FirstField(line)

	cmd := d.registry.Get(verb)
	if cmd == nil {
		d.ctx.Log.Append(fmt.Sprintf("Command not found: '%s'. Type 'help' for options.", line))
		d.log.Debug("unknown command", zap.String("line", line))
		return &NotFoundError{Verb: verb}
	}

	err := cmd.Handler(d.ctx, arg)
	if err != nil {
		d.log.Debug("command reported", zap.String("verb", cmd.Name), zap.Error(err))
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	d.log.Debug("command executed", zap.String("verb", cmd.Name))
	return nil
}

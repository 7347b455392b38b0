// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     command
// Description: Command registry and dispatcher
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package command

import (
	"context"

	mcerror "github.com/msto63/mcalc/foundation/core/error"
	mcerrors "github.com/msto63/mcalc/foundation/core/errors"
	"github.com/msto63/mcalc/foundation/utils/stringx"
	"github.com/msto63/mcalc/pkg/core/logging"
)

// Entry is one line of the command listing
type Entry struct {
	Name        string
	Description string
}

// Registry maps command names to commands and remembers registration order
type Registry struct {
	commands map[string]Command
	order    []string
	logger   *logging.Logger
}

// NewRegistry creates an empty registry
func NewRegistry(logger *logging.Logger) *Registry {
	if logger == nil {
		logger = logging.NewDiscardLogger("registry")
	}
	return &Registry{
		commands: make(map[string]Command),
		logger:   logger,
	}
}

// Register adds cmd under cmd.Name(). Registering a name again replaces the
// command but keeps its position in the listing.
func (r *Registry) Register(cmd Command) error {
	return r.RegisterAll(cmd)
}

// RegisterAll adds every command or none of them. All commands are
// validated before the first one is stored.
func (r *Registry) RegisterAll(cmds ...Command) error {
	for _, cmd := range cmds {
		if err := validate(cmd); err != nil {
			return err
		}
	}

	for _, cmd := range cmds {
		name := cmd.Name()
		if r.Has(name) {
			r.logger.Debug("command replaced", "command", name)
		} else {
			r.order = append(r.order, name)
			r.logger.Debug("command registered", "command", name)
		}
		r.commands[name] = cmd
	}
	return nil
}

func validate(cmd Command) error {
	if cmd == nil {
		return mcerrors.NewErrorBuilder(mcerrors.ModuleCommand).
			Operation("register").
			Message("command cannot be nil").
			Code(mcerror.CodeInvalidInput).
			Build()
	}
	if stringx.IsBlank(cmd.Name()) {
		return mcerrors.NewErrorBuilder(mcerrors.ModuleCommand).
			Operation("register").
			Message("command name cannot be empty").
			Code(mcerror.CodeInvalidInput).
			Build()
	}
	return nil
}

// Get returns the command registered under name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Has reports whether a command is registered under name
func (r *Registry) Has(name string) bool {
	_, ok := r.commands[name]
	return ok
}

// Len returns the number of registered commands
func (r *Registry) Len() int {
	return len(r.order)
}

// List returns name and description of every command in registration order
func (r *Registry) List() []Entry {
	entries := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		entries = append(entries, Entry{Name: name, Description: r.commands[name].Description()})
	}
	return entries
}

// Execute runs the command registered under name
func (r *Registry) Execute(ctx context.Context, s *Session, name string, args ...string) error {
	cmd, ok := r.Get(name)
	if !ok {
		return mcerrors.CommandNotFound(name)
	}

	r.logger.Debug("executing command", "command", name, "args", len(args))
	return cmd.Execute(ctx, s, args)
}

// IsCommandNotFound reports whether err was returned for an unknown command
func IsCommandNotFound(err error) bool {
	return mcerror.HasCode(err, mcerror.CodeCommandNotFound)
}

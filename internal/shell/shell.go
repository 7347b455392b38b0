// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     shell
// Description: Interactive read-eval-print loop dispatching to the command
//              registry
// Author:      Mike Stoffels
// Created:     2025-12-10
// License:     MIT
// ============================================================================

package shell

import (
	"context"
	"errors"
	"io"

	"github.com/felixgeelhaar/statekit"
	"github.com/google/uuid"

	mcerrors "github.com/msto63/mcalc/foundation/core/errors"
	"github.com/msto63/mcalc/foundation/utils/stringx"
	"github.com/msto63/mcalc/internal/command"
	"github.com/msto63/mcalc/pkg/core/logging"
)

const (
	// DefaultPrompt is shown before every top-level input line
	DefaultPrompt = ">>> "

	banner = "Application started. Type 'show_menu' to see the menu or 'exit' to exit."
)

// Config holds the shell settings
type Config struct {
	Prompt string
	In     io.Reader
	Out    io.Writer
	Logger *logging.Logger

	// SessionID is generated when empty
	SessionID string
}

// Shell reads command lines and dispatches them until exit
type Shell struct {
	registry *command.Registry
	session  *command.Session
	prompt   string
	logger   *logging.Logger

	interp *statekit.Interpreter[*machineContext]
	mctx   *machineContext
}

// New creates a shell over registry and registers the show_menu command.
// Register plugin commands before calling New so the menu comes last.
func New(registry *command.Registry, cfg Config) (*Shell, error) {
	id := cfg.SessionID
	if id == "" {
		id = uuid.NewString()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewDiscardLogger("shell")
	}
	logger = logger.Named("shell").WithSession(id)

	prompt := stringx.FromBlankDefault(cfg.Prompt, DefaultPrompt)

	if err := registry.Register(command.NewMenu(registry)); err != nil {
		return nil, err
	}

	machine, err := newMachine()
	if err != nil {
		return nil, mcerrors.NewErrorBuilder(mcerrors.ModuleShell).
			Operation("new").
			Message("failed to build shell state machine").
			Cause(err).
			Build()
	}

	mctx := &machineContext{Logger: logger}
	interp := statekit.NewInterpreter(machine)
	interp.UpdateContext(func(c **machineContext) {
		*c = mctx
	})
	interp.Start()

	return &Shell{
		registry: registry,
		session:  command.NewSession(id, cfg.In, cfg.Out, logger),
		prompt:   prompt,
		logger:   logger,
		interp:   interp,
		mctx:     mctx,
	}, nil
}

// Session returns the session shared by all commands of this shell
func (sh *Shell) Session() *command.Session {
	return sh.session
}

// State returns the current state of the shell machine
func (sh *Shell) State() statekit.StateID {
	return statekit.StateID(sh.interp.State().Value)
}

// Exited reports whether the shell reached its final state
func (sh *Shell) Exited() bool {
	return sh.interp.Done()
}

// Stats returns the number of dispatched and failed command lines
func (sh *Shell) Stats() (executed, failed int) {
	return sh.mctx.Executed, sh.mctx.Failed
}

// Close stops the state machine
func (sh *Shell) Close() {
	sh.interp.Stop()
}

// Run prints the banner and processes input until exit, end of input or
// cancellation of ctx.
func (sh *Shell) Run(ctx context.Context) error {
	sh.session.Printf("%s\n\n", banner)
	sh.logger.Info("shell started", "commands", sh.registry.Len())

	for !sh.Exited() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := sh.session.ReadLine(sh.prompt)
		switch {
		case errors.Is(err, io.EOF):
			line = "exit"
		case command.IsLineTooLong(err):
			sh.logger.LogError(err)
			sh.session.Printf("Error: %v\n", err)
			continue
		case err != nil:
			return err
		}

		sh.Handle(ctx, line)
	}

	executed, failed := sh.Stats()
	sh.logger.Info("shell exited", "executed", executed, "failed", failed)
	return nil
}

// Handle processes one top-level input line
func (sh *Shell) Handle(ctx context.Context, line string) {
	if sh.Exited() {
		return
	}

	if stringx.EqualFoldTrim(line, "exit") {
		sh.session.Println("Exiting...")
		sh.send(EventExit, submission{})
		return
	}

	name, args := command.MenuCommandName, []string(nil)
	if tokens := stringx.Tokens(line); len(tokens) > 0 {
		name, args = tokens[0], tokens[1:]
	}

	sh.send(EventSubmit, submission{Command: name})
	err := sh.registry.Execute(ctx, sh.session, name, args...)

	switch {
	case err == nil:
	case command.IsCommandNotFound(err):
		sh.logger.Debug("unknown command", "command", name)
		sh.session.Printf("Unknown command: %s\n", line)
		if menuErr := sh.registry.Execute(ctx, sh.session, command.MenuCommandName); menuErr != nil {
			sh.logger.LogError(menuErr)
		}
	default:
		sh.logger.LogError(err)
		sh.session.Printf("Error executing command: %v\n", err)
	}

	sh.send(EventComplete, submission{Command: name, Err: err})
}

func (sh *Shell) send(event string, payload submission) {
	sh.interp.Send(statekit.Event{Type: statekit.EventType(event), Payload: payload})
}

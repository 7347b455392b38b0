// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     shell
// Description: State machine of the interactive shell
// Author:      Mike Stoffels
// Created:     2025-12-10
// License:     MIT
// ============================================================================

package shell

import (
	"github.com/felixgeelhaar/statekit"

	"github.com/msto63/mcalc/pkg/core/logging"
)

// State IDs
const (
	StateAwaitingInput statekit.StateID = "awaiting_input"
	StateExecuting     statekit.StateID = "executing"
	StateExited        statekit.StateID = "exited"
)

// Events
const (
	EventSubmit   = "SUBMIT"
	EventComplete = "COMPLETE"
	EventExit     = "EXIT"
)

// machineContext carries shell bookkeeping through the state machine
type machineContext struct {
	Logger   *logging.Logger
	Executed int
	Failed   int
}

// submission is the payload of EventSubmit and EventComplete
type submission struct {
	Command string
	Err     error
}

// newMachine builds the shell statechart:
//
//	awaiting_input --SUBMIT--> executing --COMPLETE--> awaiting_input
//	awaiting_input --EXIT--> exited (final)
func newMachine() (*statekit.MachineConfig[*machineContext], error) {
	return statekit.NewMachine[*machineContext]("shell").
		WithInitial(StateAwaitingInput).
		WithContext(&machineContext{}).
		WithAction("logEntry", logStateEntry).
		WithAction("countExecution", countExecution).
		State(StateAwaitingInput).
			OnEntry("logEntry").
			On(EventSubmit).Target(StateExecuting).
			On(EventExit).Target(StateExited).
			Done().
		State(StateExecuting).
			OnEntry("logEntry").
			On(EventComplete).Target(StateAwaitingInput).Do("countExecution").
			Done().
		State(StateExited).
			Final().
			OnEntry("logEntry").
			Done().
		Build()
}

func logStateEntry(ctx **machineContext, event statekit.Event) {
	if ctx == nil || *ctx == nil || (*ctx).Logger == nil {
		return
	}

	kv := []interface{}{"event", string(event.Type)}
	if p, ok := event.Payload.(submission); ok && p.Command != "" {
		kv = append(kv, "command", p.Command)
	}
	(*ctx).Logger.Debug("shell state entered", kv...)
}

func countExecution(ctx **machineContext, event statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}

	c := *ctx
	c.Executed++
	if p, ok := event.Payload.(submission); ok && p.Err != nil {
		c.Failed++
	}
}

// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     command
// Description: history command listing, showing and clearing calculations
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package command

import (
	"context"
	"fmt"
	"strings"

	mcerrors "github.com/msto63/mcalc/foundation/core/errors"
	"github.com/msto63/mcalc/internal/calculator"
)

const (
	historyUsage = "history [latest|clear]"
	emptyHistory = "No calculations in history."
)

// HistoryCommand shows or clears the session history
type HistoryCommand struct{}

// NewHistory creates the history command
func NewHistory() *HistoryCommand {
	return &HistoryCommand{}
}

// Name implements Command
func (h *HistoryCommand) Name() string {
	return "history"
}

// Description implements Command
func (h *HistoryCommand) Description() string {
	return "Show the calculation history. Use 'history latest' or 'history clear'."
}

// Execute implements Command
func (h *HistoryCommand) Execute(_ context.Context, s *Session, args []string) error {
	if len(args) == 0 {
		return h.list(s)
	}
	if len(args) > 1 {
		return mcerrors.InvalidFormat(mcerrors.ModuleCommand, strings.Join(args, " "), historyUsage)
	}

	switch strings.ToLower(args[0]) {
	case "latest":
		calc, ok := s.History.Latest()
		if !ok {
			s.Println(NewStyles(s.Out()).Muted.Render(emptyHistory))
			return nil
		}
		s.Println(formatEntry(s.History.Len(), calc))
	case "clear":
		n := s.History.Len()
		s.History.Clear()
		s.Logger.Info("history cleared", "entries", n)
		s.Println("History cleared.")
	default:
		return mcerrors.InvalidFormat(mcerrors.ModuleCommand, args[0], historyUsage)
	}
	return nil
}

func (h *HistoryCommand) list(s *Session) error {
	entries := s.History.All()
	if len(entries) == 0 {
		s.Println(NewStyles(s.Out()).Muted.Render(emptyHistory))
		return nil
	}
	for i, calc := range entries {
		s.Println(formatEntry(i+1, calc))
	}
	return nil
}

// formatEntry renders "<n>. Calculation(a, b, op) = result"
func formatEntry(n int, calc *calculator.Calculation) string {
	result, err := calc.Compute()
	if err != nil {
		return fmt.Sprintf("%d. %s = error: %s", n, calc, calculator.UserMessage(err))
	}
	return fmt.Sprintf("%d. %s = %s", n, calc, result)
}

// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     command
// Description: show_menu command listing every registered command
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package command

import (
	"context"
)

// MenuCommandName is the name the shell falls back to on empty input
const MenuCommandName = "show_menu"

// Menu prints the registered commands
type Menu struct {
	registry *Registry
}

// NewMenu creates the menu command for registry
func NewMenu(registry *Registry) *Menu {
	return &Menu{registry: registry}
}

// Name implements Command
func (m *Menu) Name() string {
	return MenuCommandName
}

// Description implements Command
func (m *Menu) Description() string {
	return "Show the dynamic menu of all commands."
}

// Execute implements Command
func (m *Menu) Execute(_ context.Context, s *Session, _ []string) error {
	styles := NewStyles(s.Out())

	s.Println(styles.Heading.Render("Application Menu:"))
	for _, entry := range m.registry.List() {
		s.Printf("\t%s: %s\n", styles.Name.Render(entry.Name), entry.Description)
	}
	return nil
}

// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     command
// Description: Terminal styles for command output
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package command

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles holds the styles bound to one output. When the output is not a
// terminal every style renders plain text.
type Styles struct {
	Heading lipgloss.Style
	Name    lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles creates styles for out
func NewStyles(out io.Writer) Styles {
	r := lipgloss.NewRenderer(out)
	return Styles{
		Heading: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		Name: r.NewStyle().
			Foreground(colorSecondary),
		Muted: r.NewStyle().
			Foreground(colorMuted),
	}
}

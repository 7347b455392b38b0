// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     version
// Description: Central version management
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Application version
	App = "1.0.0"

	// PluginAPI is bumped when the plugin contract changes
	PluginAPI = "1.0.0"
)

// Set at build time via -ldflags "-X github.com/msto63/mcalc/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns a one-line version description
func String() string {
	return fmt.Sprintf("mcalc %s (plugin api %s, commit %s, built %s)", App, PluginAPI, Commit, BuildDate)
}

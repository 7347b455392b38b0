// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     plugin
// Description: Error definitions for the plugin loader
// Author:      Mike Stoffels
// Created:     2025-12-09
// License:     MIT
// ============================================================================

package plugin

import "errors"

var (
	// Catalog errors
	ErrUnknownPlugin   = errors.New("no such plugin is compiled in")
	ErrPluginExists    = errors.New("plugin with this name already exists")
	ErrMissingName     = errors.New("plugin name is required")
	ErrMissingCommands = errors.New("plugin provides no commands")

	// Manifest errors
	ErrInvalidYAML = errors.New("invalid YAML syntax")
)

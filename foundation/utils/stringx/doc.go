// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the small set of string helpers used
//              when reading and echoing interactive input.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2026-10-19 v0.3.0: Reduced to input handling helpers

// Package stringx provides extended string operations for mcalc.
//
// The functions here are Unicode-aware. Blank means empty or whitespace only,
// empty means zero length.
//
// Usage:
//
//	if stringx.IsBlank(line) {
//		// show the menu
//	}
//	tokens := stringx.Tokens(line)
//	name := stringx.FirstNonBlank(flagValue, envValue, "default")
package stringx

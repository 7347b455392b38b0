// Package errors provides the module-level error constructors used by every
// mcalc package. Each constructor returns a *error.Error with a fixed code,
// the owning module and the failing operation recorded as details.
//
// Package: errors
// Title: Standard Error Constructors for mcalc
// Description: Common error patterns for the mathx, calculator, command,
//              plugin and config modules, built on the core error package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-19 v0.2.0: Constructors for the calculator taxonomy
//
// Usage:
//
//	err := errors.MathxDivisionByZero("divide")
//	module, _ := err.Detail("module") // "mathx"
package errors

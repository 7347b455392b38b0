// Package error provides structured error handling for mcalc.
//
// Package: error
// Title: mcalc Error Handling Framework
// Description: This package implements a structured error type with codes,
//              severity levels, details and cause chains. Callers classify
//              failures by code instead of matching message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced to the calculator taxonomy, errors.As aware lookups
//
// Usage:
//   import mcerror "github.com/msto63/mcalc/foundation/core/error"
//
//   err := mcerror.New("cannot divide by zero").
//     WithCode(mcerror.CodeDivisionByZero).
//     WithOperation("divide")
//
//   if mcerror.HasCode(err, mcerror.CodeDivisionByZero) {
//     // print the divide-by-zero diagnostic
//   }
package error

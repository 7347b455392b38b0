// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides arbitrary-precision decimal arithmetic
//              with display scale tracking.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-19 v0.3.0: Scale tracking, exact rounding, removed currency and business helpers

// Package mathx provides precise decimal arithmetic for mcalc.
//
// Package: mathx
// Title: Decimal Arithmetic
// Description: A Decimal pairs an exact rational value (math/big.Rat) with
//              a display scale, the number of digits printed after the
//              decimal point. Values never pass through float64.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Scale rules
//
// The scale of a parsed value is the number of fractional digits written,
// reduced by a positive exponent and never below zero:
//
//	"5"      scale 0
//	"1.50"   scale 2
//	"1.5e1"  scale 0   (prints "15")
//	"1e-3"   scale 3   (prints "0.001")
//
// Add and Subtract use the larger scale of the two operands, Multiply the
// sum of both scales. Divide uses the smallest scale that represents the
// exact quotient, never less than scale(a) - scale(b). Quotients without a
// finite decimal expansion are rounded half-even to DivisionPrecision
// significant digits.
//
// Usage
//
//	a, err := mathx.NewDecimal("10")
//	b, err := mathx.NewDecimal("4")
//	q, err := a.Divide(b)   // 2.5
//	zero, _ := mathx.NewDecimal("0")
//	_, err = a.Divide(zero)
//	// err carries code MATHX_DIVISION_BY_ZERO
//
// Errors
//
// Parsing failures and division by zero return *error.Error values built by
// the foundation/core/errors constructors.
package mathx

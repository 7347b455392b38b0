// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     calculator
// Description: Arithmetic operations on decimals
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package calculator

import (
	mcerrors "github.com/msto63/mcalc/foundation/core/errors"
	"github.com/msto63/mcalc/foundation/utils/mathx"
)

// Operation is a named binary operation on decimals. Apply has no side effects.
type Operation struct {
	Name  string
	Apply func(a, b mathx.Decimal) (mathx.Decimal, error)
}

// Built-in operations
var (
	Add = Operation{Name: "add", Apply: func(a, b mathx.Decimal) (mathx.Decimal, error) {
		return a.Add(b), nil
	}}

	Subtract = Operation{Name: "subtract", Apply: func(a, b mathx.Decimal) (mathx.Decimal, error) {
		return a.Subtract(b), nil
	}}

	Multiply = Operation{Name: "multiply", Apply: func(a, b mathx.Decimal) (mathx.Decimal, error) {
		return a.Multiply(b), nil
	}}

	Divide = Operation{Name: "divide", Apply: func(a, b mathx.Decimal) (mathx.Decimal, error) {
		return a.Divide(b)
	}}
)

// Operations returns the built-in operation table in a fixed order
func Operations() []Operation {
	return []Operation{Add, Subtract, Multiply, Divide}
}

// Lookup finds a built-in operation by name. Names are case-sensitive,
// matching the single-shot command line.
func Lookup(name string) (Operation, error) {
	for _, op := range Operations() {
		if op.Name == name {
			return op, nil
		}
	}
	return Operation{}, mcerrors.UnknownOperation(name)
}

// String returns the operation name
func (o Operation) String() string {
	return o.Name
}

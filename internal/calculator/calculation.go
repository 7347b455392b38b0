// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     calculator
// Description: Calculation record binding two operands to an operation
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package calculator

import (
	"fmt"

	"github.com/msto63/mcalc/foundation/utils/mathx"
)

// Calculation is an immutable record of two operands and an operation.
// The result is derived on demand and never stored.
type Calculation struct {
	operand1  mathx.Decimal
	operand2  mathx.Decimal
	operation Operation
}

// NewCalculation creates a calculation without computing it
func NewCalculation(a, b mathx.Decimal, op Operation) *Calculation {
	return &Calculation{operand1: a, operand2: b, operation: op}
}

// Operand1 returns the first operand
func (c *Calculation) Operand1() mathx.Decimal {
	return c.operand1
}

// Operand2 returns the second operand
func (c *Calculation) Operand2() mathx.Decimal {
	return c.operand2
}

// Operation returns the bound operation
func (c *Calculation) Operation() Operation {
	return c.operation
}

// Compute applies the operation to the operands. Errors from the operation,
// such as division by zero, are returned unchanged.
func (c *Calculation) Compute() (mathx.Decimal, error) {
	return c.operation.Apply(c.operand1, c.operand2)
}

// String renders the calculation as Calculation(a, b, op)
func (c *Calculation) String() string {
	return fmt.Sprintf("Calculation(%s, %s, %s)", c.operand1, c.operand2, c.operation.Name)
}

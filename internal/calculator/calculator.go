// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     calculator
// Description: Calculator facade that evaluates operand text and records
//              successful calculations in a history
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package calculator

import (
	"errors"
	"fmt"

	mcerror "github.com/msto63/mcalc/foundation/core/error"
	mcerrors "github.com/msto63/mcalc/foundation/core/errors"
	"github.com/msto63/mcalc/foundation/utils/mathx"
	"github.com/msto63/mcalc/pkg/core/logging"
)

// Calculator computes operations and appends every successful
// calculation to its history.
type Calculator struct {
	history *History
	logger  *logging.Logger
}

// Result is a computed calculation together with its value
type Result struct {
	Calculation *Calculation
	Value       mathx.Decimal
}

// New creates a calculator. A nil history or logger is replaced by a
// fresh history or a discarding logger.
func New(history *History, logger *logging.Logger) *Calculator {
	if history == nil {
		history = NewHistory()
	}
	if logger == nil {
		logger = logging.NewDiscardLogger("calculator")
	}
	return &Calculator{history: history, logger: logger}
}

// History returns the history this calculator records into
func (c *Calculator) History() *History {
	return c.history
}

// record computes op(a, b). Only successful calculations are appended.
func (c *Calculator) record(op Operation, a, b mathx.Decimal) (*Result, error) {
	calc := NewCalculation(a, b, op)
	result, err := calc.Compute()
	if err != nil {
		c.logger.Debug("calculation failed", "calculation", calc.String(), "error", err)
		return nil, err
	}

	c.history.Add(calc)
	c.logger.Debug("calculation recorded",
		"calculation", calc.String(),
		"result", result.String(),
		"history_len", c.history.Len(),
	)
	return &Result{Calculation: calc, Value: result}, nil
}

// Evaluate parses both operand strings and applies op
func (c *Calculator) Evaluate(operand1, operand2 string, op Operation) (*Result, error) {
	a, b, err := ParseOperands(op.Name, operand1, operand2)
	if err != nil {
		return nil, err
	}

	return c.record(op, a, b)
}

// EvaluateNamed is Evaluate with the operation looked up by name. Operands
// are validated before the operation name.
func (c *Calculator) EvaluateNamed(operand1, operand2, opName string) (*Result, error) {
	a, b, err := ParseOperands(opName, operand1, operand2)
	if err != nil {
		return nil, err
	}

	op, err := Lookup(opName)
	if err != nil {
		return nil, err
	}

	return c.record(op, a, b)
}

// ParseOperands converts both operand strings to decimals. Either failing
// yields one InvalidOperands error naming both inputs.
func ParseOperands(opName, operand1, operand2 string) (mathx.Decimal, mathx.Decimal, error) {
	a, err := mathx.NewDecimal(operand1)
	if err != nil {
		return mathx.Decimal{}, mathx.Decimal{}, mcerrors.InvalidOperands(opName, operand1, operand2, err)
	}
	b, err := mathx.NewDecimal(operand2)
	if err != nil {
		return mathx.Decimal{}, mathx.Decimal{}, mcerrors.InvalidOperands(opName, operand1, operand2, err)
	}
	return a, b, nil
}

// Sentence renders the result line shown to the user
func (r *Result) Sentence() string {
	return fmt.Sprintf("The result of %s %s %s is equal to %s",
		r.Calculation.Operand1(), r.Calculation.Operation().Name, r.Calculation.Operand2(), r.Value)
}

// UserMessage turns an evaluation error into the text shown inside an
// interactive loop.
func UserMessage(err error) string {
	switch mcerror.GetCode(err) {
	case mcerror.CodeDivisionByZero:
		return "Cannot divide by zero"
	case mcerror.CodeUnknownOperation:
		return fmt.Sprintf("Unknown operation: %s", detail(err, "name"))
	case mcerror.CodeInvalidInput:
		if _, ok := lookupDetail(err, "operand1"); ok {
			return fmt.Sprintf("Invalid number input: %s or %s is not a valid number.",
				detail(err, "operand1"), detail(err, "operand2"))
		}
	case mcerror.CodeInvalidFormat:
		if expected, ok := lookupDetail(err, "expected_format"); ok {
			return fmt.Sprintf("Invalid input format. Please use: %v", expected)
		}
	}
	return err.Error()
}

// Describe turns an evaluation error into the single line printed by the
// one-shot command line mode.
func Describe(err error) string {
	switch mcerror.GetCode(err) {
	case mcerror.CodeDivisionByZero:
		return "An error occurred: " + UserMessage(err)
	case mcerror.CodeUnknownOperation, mcerror.CodeInvalidInput:
		return UserMessage(err)
	default:
		return fmt.Sprintf("An unexpected error occurred: %v", err)
	}
}

func lookupDetail(err error, key string) (interface{}, bool) {
	var e *mcerror.Error
	if !errors.As(err, &e) {
		return nil, false
	}
	return e.Detail(key)
}

func detail(err error, key string) string {
	v, _ := lookupDetail(err, key)
	return fmt.Sprint(v)
}

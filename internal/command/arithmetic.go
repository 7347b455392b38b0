// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     command
// Description: Arithmetic commands with their own input loop
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	mcerrors "github.com/msto63/mcalc/foundation/core/errors"
	"github.com/msto63/mcalc/foundation/utils/stringx"
	"github.com/msto63/mcalc/internal/calculator"
)

// operandFormat is the expected shape of one inner loop line
const operandFormat = "<operand1> <operand2>"

// ArithmeticText holds the wording of one arithmetic command
type ArithmeticText struct {
	Verb        string // "add"
	Noun        string // "addition"
	Title       string // "Addition"
	Label       string // "Add"
	Progressive string // "adding"
	Example     string // "2 3"
}

// Arithmetic runs an operation repeatedly on operand pairs read from the
// session until the user types exit.
type Arithmetic struct {
	op   calculator.Operation
	text ArithmeticText
}

// NewArithmetic creates an arithmetic command named after op
func NewArithmetic(op calculator.Operation, text ArithmeticText) *Arithmetic {
	return &Arithmetic{op: op, text: text}
}

// Name implements Command
func (a *Arithmetic) Name() string {
	return a.op.Name
}

// Description implements Command
func (a *Arithmetic) Description() string {
	return fmt.Sprintf("Continuously %s two numbers. Type 'exit' to return to the main menu.", a.text.Verb)
}

// Operation returns the bound operation
func (a *Arithmetic) Operation() calculator.Operation {
	return a.op
}

// Execute implements Command. Arguments are ignored; operands are read
// from the session line by line.
func (a *Arithmetic) Execute(ctx context.Context, s *Session, _ []string) error {
	s.Printf("Operation: %s\n", a.text.Title)
	s.Printf("\tContinuously enter two numbers separated by space to perform %s.\n", a.text.Noun)
	s.Println("\tType 'exit' at any time to return to the main menu.")
	s.Printf("\t\t[Example]: %s\n", a.text.Example)

	calc := s.Calculator()
	logger := s.Logger.With("command", a.op.Name)
	prompt := fmt.Sprintf("[%s]:  ", a.text.Label)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.ReadLine(prompt)
		if errors.Is(err, io.EOF) || (err == nil && stringx.EqualFoldTrim(line, "exit")) {
			s.Printf("Exiting %s operation.\n\n", a.text.Noun)
			return nil
		}
		if IsLineTooLong(err) {
			logger.Debug("input line rejected", "error", err)
			a.printError(s, err)
			continue
		}
		if err != nil {
			return err
		}

		tokens := stringx.Tokens(line)
		if len(tokens) != 2 {
			a.printError(s, mcerrors.InvalidFormat(mcerrors.ModuleCommand, line, operandFormat))
			continue
		}

		result, err := calc.Evaluate(tokens[0], tokens[1], a.op)
		if err != nil {
			logger.Debug("evaluation rejected", "input", stringx.Truncate(line, 64, "..."), "error", err)
			a.printError(s, err)
			continue
		}

		s.Println(result.Sentence())
		s.Printf("You can continue %s or type 'exit' to return to the main menu.\n\n", a.text.Progressive)
	}
}

func (a *Arithmetic) printError(s *Session, err error) {
	s.Printf("Error: %s\nPlease try again or type 'exit' to exit.\n\n", calculator.UserMessage(err))
}

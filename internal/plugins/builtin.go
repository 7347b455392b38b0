// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     plugins
// Description: The plugins compiled into mcalc
// Author:      Mike Stoffels
// Created:     2025-12-09
// License:     MIT
// ============================================================================

package plugins

import (
	"github.com/msto63/mcalc/internal/calculator"
	"github.com/msto63/mcalc/internal/command"
	"github.com/msto63/mcalc/internal/plugin"
)

var texts = map[string]command.ArithmeticText{
	calculator.Add.Name: {
		Verb: "add", Noun: "addition", Title: "Addition",
		Label: "Add", Progressive: "adding", Example: "2 3",
	},
	calculator.Subtract.Name: {
		Verb: "subtract", Noun: "subtraction", Title: "Subtraction",
		Label: "Subtract", Progressive: "subtracting", Example: "5 1",
	},
	calculator.Multiply.Name: {
		Verb: "multiply", Noun: "multiplication", Title: "Multiplication",
		Label: "Multiply", Progressive: "multiplying", Example: "3 4",
	},
	calculator.Divide.Name: {
		Verb: "divide", Noun: "division", Title: "Division",
		Label: "Divide", Progressive: "dividing", Example: "4 2",
	},
}

func arithmetic(op calculator.Operation) plugin.Plugin {
	text := texts[op.Name]
	return plugin.Plugin{
		Name:        op.Name,
		Description: "Continuous " + text.Noun,
		Commands: func() []command.Command {
			return []command.Command{command.NewArithmetic(op, text)}
		},
	}
}

// All returns the built-in plugin definitions
func All() []plugin.Plugin {
	out := make([]plugin.Plugin, 0, len(texts)+1)
	for _, op := range calculator.Operations() {
		out = append(out, arithmetic(op))
	}
	out = append(out, plugin.Plugin{
		Name:        "history",
		Description: "Calculation history",
		Commands: func() []command.Command {
			return []command.Command{command.NewHistory()}
		},
	})
	return out
}

// Builtin returns a catalog holding every built-in plugin
func Builtin() *plugin.Catalog {
	catalog, err := plugin.NewCatalog(All()...)
	if err != nil {
		// The definitions above are static; a failure is a programming error.
		panic(err)
	}
	return catalog
}

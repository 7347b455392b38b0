package calculator

import (
	"errors"
	"testing"

	mcerror "github.com/msto63/mcalc/foundation/core/error"
	mcerrors "github.com/msto63/mcalc/foundation/core/errors"
	"github.com/msto63/mcalc/foundation/utils/mathx"
)

func dec(s string) mathx.Decimal {
	d, err := mathx.NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestOperations(t *testing.T) {
	tests := []struct {
		op   Operation
		a, b string
		want string
	}{
		{Add, "5", "3", "8"},
		{Subtract, "10", "4", "6"},
		{Multiply, "7", "6", "42"},
		{Divide, "8", "2", "4"},
		{Add, "1.0", "2", "3.0"},
		{Multiply, "0.1", "0.2", "0.02"},
	}

	for _, tt := range tests {
		t.Run(tt.op.Name+" "+tt.a+" "+tt.b, func(t *testing.T) {
			got, err := tt.op.Apply(dec(tt.a), dec(tt.b))
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Apply() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	for _, want := range Operations() {
		op, err := Lookup(want.Name)
		if err != nil || op.Name != want.Name {
			t.Errorf("Lookup(%q) = %v, %v", want.Name, op.Name, err)
		}
	}

	_, err := Lookup("modulo")
	if !mcerror.HasCode(err, mcerror.CodeUnknownOperation) {
		t.Errorf("Lookup(modulo) error = %v, want UNKNOWN_OPERATION", err)
	}
	if _, err := Lookup("ADD"); err == nil {
		t.Error("Lookup() should be case-sensitive")
	}
}

func TestCalculation(t *testing.T) {
	calc := NewCalculation(dec("10"), dec("5"), Divide)

	if got := calc.String(); got != "Calculation(10, 5, divide)" {
		t.Errorf("String() = %q", got)
	}

	result, err := calc.Compute()
	if err != nil || result.String() != "2" {
		t.Errorf("Compute() = %v, %v, want 2", result, err)
	}

	// Compute is repeatable
	again, _ := calc.Compute()
	if again.String() != result.String() {
		t.Errorf("second Compute() = %v, want %v", again, result)
	}

	if got := NewCalculation(dec("1.0"), dec("2"), Add).String(); got != "Calculation(1.0, 2, add)" {
		t.Errorf("String() = %q, want input precision kept", got)
	}
}

func TestCalculation_DivideByZero(t *testing.T) {
	_, err := NewCalculation(dec("10"), dec("0"), Divide).Compute()
	if !mcerror.HasCode(err, mcerror.CodeDivisionByZero) {
		t.Errorf("Compute() error = %v, want MATHX_DIVISION_BY_ZERO", err)
	}
}

func TestHistory(t *testing.T) {
	h := NewHistory()

	if _, ok := h.Latest(); ok {
		t.Error("Latest() on empty history should report false")
	}

	first := NewCalculation(dec("1"), dec("2"), Add)
	second := NewCalculation(dec("3"), dec("4"), Multiply)
	h.Add(first)
	h.Add(second)

	all := h.All()
	if len(all) != 2 || all[0] != first || all[1] != second {
		t.Fatalf("All() = %v, want insertion order", all)
	}

	all[0] = nil
	if h.All()[0] != first {
		t.Error("All() must return a copy")
	}

	if latest, ok := h.Latest(); !ok || latest != second {
		t.Errorf("Latest() = %v, %v", latest, ok)
	}

	h.Clear()
	if h.Len() != 0 || len(h.All()) != 0 {
		t.Errorf("Clear() left %d entries", h.Len())
	}
}

func TestCalculator_RecordsOnlySuccess(t *testing.T) {
	c := New(nil, nil)

	tests := []struct {
		a, b string
		op   Operation
		want string
	}{
		{"5", "3", Add, "8"},
		{"10", "4", Subtract, "6"},
		{"7", "6", Multiply, "42"},
		{"8", "2", Divide, "4"},
	}
	for _, tt := range tests {
		res, err := c.Evaluate(tt.a, tt.b, tt.op)
		if err != nil || res.Value.String() != tt.want {
			t.Errorf("Evaluate(%s, %s, %s) = %v, %v, want %s", tt.a, tt.b, tt.op, res, err, tt.want)
		}
	}
	if c.History().Len() != 4 {
		t.Fatalf("History().Len() = %d, want 4", c.History().Len())
	}
	if latest, _ := c.History().Latest(); latest.String() != "Calculation(8, 2, divide)" {
		t.Errorf("Latest() = %v", latest)
	}

	if _, err := c.Evaluate("1", "0", Divide); err == nil {
		t.Fatal("Evaluate() dividing by zero should fail")
	}
	if _, err := c.Evaluate("a", "3", Add); err == nil {
		t.Fatal("Evaluate() with bad operand should fail")
	}
	if _, err := c.EvaluateNamed("1", "2", "power"); err == nil {
		t.Fatal("EvaluateNamed() with unknown operation should fail")
	}
	if c.History().Len() != 4 {
		t.Errorf("failed calculations were recorded: len = %d", c.History().Len())
	}
}

func TestCalculator_SharedHistory(t *testing.T) {
	h := NewHistory()
	if _, err := New(h, nil).Evaluate("1", "1", Add); err != nil {
		t.Fatal(err)
	}
	if _, err := New(h, nil).EvaluateNamed("2", "2", "add"); err != nil {
		t.Fatal(err)
	}

	if h.Len() != 2 {
		t.Errorf("shared history len = %d, want 2", h.Len())
	}
}

func TestEvaluateNamed_Sentence(t *testing.T) {
	tests := []struct {
		a, b, op string
		want     string
	}{
		{"5", "3", "add", "The result of 5 add 3 is equal to 8"},
		{"10", "2", "subtract", "The result of 10 subtract 2 is equal to 8"},
		{"4", "5", "multiply", "The result of 4 multiply 5 is equal to 20"},
		{"20", "4", "divide", "The result of 20 divide 4 is equal to 5"},
		{"1", "3", "divide", "The result of 1 divide 3 is equal to 0.3333333333333333333333333333"},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			res, err := New(nil, nil).EvaluateNamed(tt.a, tt.b, tt.op)
			if err != nil {
				t.Fatalf("EvaluateNamed() error = %v", err)
			}
			if got := res.Sentence(); got != tt.want {
				t.Errorf("Sentence() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	c := New(nil, nil)

	tests := []struct {
		name string
		err  func() error
		want string
	}{
		{
			name: "division by zero",
			err:  func() error { _, err := c.EvaluateNamed("1", "0", "divide"); return err },
			want: "An error occurred: Cannot divide by zero",
		},
		{
			name: "unknown operation",
			err:  func() error { _, err := c.EvaluateNamed("9", "3", "unknown"); return err },
			want: "Unknown operation: unknown",
		},
		{
			name: "invalid number",
			err:  func() error { _, err := c.EvaluateNamed("a", "3", "add"); return err },
			want: "Invalid number input: a or 3 is not a valid number.",
		},
		{
			name: "invalid number checked before operation",
			err:  func() error { _, err := c.EvaluateNamed("5", "b", "nope"); return err },
			want: "Invalid number input: 5 or b is not a valid number.",
		},
		{
			name: "unexpected",
			err:  func() error { return errors.New("disk on fire") },
			want: "An unexpected error occurred: disk on fire",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.err()); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	_, zeroErr := New(nil, nil).Evaluate("1", "0", Divide)
	if got := UserMessage(zeroErr); got != "Cannot divide by zero" {
		t.Errorf("UserMessage(division) = %q", got)
	}

	formatErr := mcerrors.InvalidFormat(mcerrors.ModuleCommand, "1 2 3", "<operand1> <operand2>")
	if got := UserMessage(formatErr); got != "Invalid input format. Please use: <operand1> <operand2>" {
		t.Errorf("UserMessage(format) = %q", got)
	}

	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

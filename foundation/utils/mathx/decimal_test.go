// File: decimal_test.go
// Title: Decimal Arithmetic Tests
// Description: Tests for parsing, scale tracking, division precision and
//              rounding of Decimal values.
// Author: msto63
// Version: v0.3.1
// Created: 2025-01-24
// Modified: 2026-10-20
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-19 v0.3.0: Scale and significant digit coverage
// - 2026-10-20 v0.3.1: Half-even rounding of quotients, removed helper API tests

package mathx

import (
	"math/big"
	"strings"
	"testing"

	mcerror "github.com/msto63/mcalc/foundation/core/error"
)

func dec(t *testing.T, s string) Decimal {
	t.Helper()
	d, err := NewDecimal(s)
	if err != nil {
		t.Fatalf("NewDecimal(%q) error = %v", s, err)
	}
	return d
}

func TestNewDecimal(t *testing.T) {
	tests := []struct {
		input     string
		want      string
		wantScale int
	}{
		{"5", "5", 0},
		{"-3", "-3", 0},
		{"+7", "7", 0},
		{"1.0", "1.0", 1},
		{"1.50", "1.50", 2},
		{".5", "0.5", 1},
		{"3.", "3", 0},
		{"1e3", "1000", 0},
		{"1.5e1", "15", 0},
		{"1.25e-2", "0.0125", 4},
		{" 42 ", "42", 0},
		{"007", "7", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := NewDecimal(tt.input)
			if err != nil {
				t.Fatalf("NewDecimal(%q) error = %v", tt.input, err)
			}
			if d.String() != tt.want {
				t.Errorf("NewDecimal(%q).String() = %q, want %q", tt.input, d.String(), tt.want)
			}
			if int(d.scale) != tt.wantScale {
				t.Errorf("NewDecimal(%q) scale = %d, want %d", tt.input, d.scale, tt.wantScale)
			}
		})
	}
}

func TestNewDecimal_Invalid(t *testing.T) {
	inputs := []string{"", "a", "1/2", "0x10", "1,5", "--1", "1e", "e5", "NaN", "1e99999", "1 2"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := NewDecimal(input)
			if err == nil {
				t.Fatalf("NewDecimal(%q) should fail", input)
			}
			if !mcerror.HasCode(err, mcerror.CodeInvalidInput) {
				t.Errorf("NewDecimal(%q) code = %v, want %v", input, mcerror.GetCode(err), mcerror.CodeInvalidInput)
			}
		})
	}
}

func TestDecimal_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		op   func(a, b Decimal) Decimal
		want string
	}{
		{"add integers", "5", "3", Decimal.Add, "8"},
		{"add keeps larger scale", "1.0", "2", Decimal.Add, "3.0"},
		{"add exact tenths", "0.1", "0.2", Decimal.Add, "0.3"},
		{"add to zero", "-1.5", "1.5", Decimal.Add, "0.0"},
		{"subtract", "10", "4", Decimal.Subtract, "6"},
		{"subtract negative result", "2.5", "7", Decimal.Subtract, "-4.5"},
		{"multiply", "6", "7", Decimal.Multiply, "42"},
		{"multiply sums scales", "0.1", "0.2", Decimal.Multiply, "0.02"},
		{"multiply trailing zeros", "1.5", "2", Decimal.Multiply, "3.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op(dec(t, tt.a), dec(t, tt.b))
			if got.String() != tt.want {
				t.Errorf("%s %s = %q, want %q", tt.a, tt.b, got.String(), tt.want)
			}
		})
	}
}

func TestDecimal_Divide(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"10", "4", "2.5"},
		{"6", "2", "3"},
		{"6.0", "2", "3.0"},
		{"1", "0.5", "2"},
		{"1", "8", "0.125"},
		{"1.000", "4", "0.250"},
		{"-9", "3", "-3"},
		{"1", "3", "0.3333333333333333333333333333"},
		{"2", "3", "0.6666666666666666666666666667"},
		{"100", "3", "33.33333333333333333333333333"},
		{"-1", "3", "-0.3333333333333333333333333333"},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			got, err := dec(t, tt.a).Divide(dec(t, tt.b))
			if err != nil {
				t.Fatalf("Divide() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("%s / %s = %q, want %q", tt.a, tt.b, got.String(), tt.want)
			}
		})
	}
}

func TestDecimal_DivideSignificantDigits(t *testing.T) {
	got, err := dec(t, "1").Divide(dec(t, "7"))
	if err != nil {
		t.Fatalf("Divide() error = %v", err)
	}
	digits := strings.TrimLeft(strings.Replace(got.String(), ".", "", 1), "0")
	if len(digits) != DivisionPrecision {
		t.Errorf("1/7 has %d significant digits, want %d (%s)", len(digits), DivisionPrecision, got)
	}
}

func TestDecimal_DivideByZero(t *testing.T) {
	zeros := []Decimal{dec(t, "0"), dec(t, "0.00"), {}}

	for _, zero := range zeros {
		_, err := dec(t, "5").Divide(zero)
		if err == nil {
			t.Fatal("Divide() by zero should fail")
		}
		if !mcerror.HasCode(err, mcerror.CodeDivisionByZero) {
			t.Errorf("Divide() code = %v, want %v", mcerror.GetCode(err), mcerror.CodeDivisionByZero)
		}
	}
}

func TestRoundHalfEven(t *testing.T) {
	tests := []struct {
		num, den int64
		want     int64
	}{
		{5, 2, 2},
		{7, 2, 4},
		{-5, 2, -2},
		{-7, 2, -4},
		{7, 3, 2},
		{8, 3, 3},
		{-8, 3, -3},
		{4, 1, 4},
	}

	for _, tt := range tests {
		got := roundHalfEven(big.NewRat(tt.num, tt.den))
		if got.Int64() != tt.want {
			t.Errorf("roundHalfEven(%d/%d) = %s, want %d", tt.num, tt.den, got, tt.want)
		}
	}
}

func TestDecimal_ScaleInString(t *testing.T) {
	one := dec(t, "1")
	oneScaled := dec(t, "1.00")

	if one.rat().Cmp(oneScaled.rat()) != 0 {
		t.Error("1 and 1.00 should have the same value")
	}
	if one.String() == oneScaled.String() {
		t.Error("scale should be preserved in String()")
	}
	var zero Decimal
	if !zero.IsZero() || zero.String() != "0" {
		t.Errorf("zero value = %q, IsZero() = %v", zero.String(), zero.IsZero())
	}
}

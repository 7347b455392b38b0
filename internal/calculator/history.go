// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     calculator
// Description: Ordered history of successful calculations
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package calculator

// History keeps calculations in insertion order. It is owned by one
// session and is not safe for concurrent use.
type History struct {
	entries []*Calculation
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{}
}

// Add appends a calculation
func (h *History) Add(calc *Calculation) {
	h.entries = append(h.entries, calc)
}

// All returns the calculations oldest first. The slice is a copy.
func (h *History) All() []*Calculation {
	out := make([]*Calculation, len(h.entries))
	copy(out, h.entries)
	return out
}

// Latest returns the most recent calculation
func (h *History) Latest() (*Calculation, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	return h.entries[len(h.entries)-1], true
}

// Clear removes all calculations
func (h *History) Clear() {
	h.entries = nil
}

// Len returns the number of calculations
func (h *History) Len() int {
	return len(h.entries)
}

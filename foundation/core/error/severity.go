// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to pick the log level of an
//              error and to decide whether it is a user mistake or a fault.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with four severity levels
// - 2026-10-19 v0.1.1: Code mapping for the calculator taxonomy

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a user mistake such as a malformed operand
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure that affects one command only
	SeverityMedium

	// SeverityHigh indicates a failure that affects the whole session
	SeverityHigh

	// SeverityCritical indicates the program cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityHigh
	case CodeConfigError, CodeInvalidConfig, CodePluginImport:
		return SeverityMedium
	case CodeInvalidInput, CodeInvalidFormat, CodeDivisionByZero,
		CodeUnknownOperation, CodeCommandNotFound, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}

// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across mcalc for consistent
//              classification of parse, arithmetic, dispatch and plugin
//              failures.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Calculator, command and plugin codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Parsing
	CodeInvalidFormat Code = "INVALID_FORMAT"

	// Arithmetic
	CodeDivisionByZero   Code = "MATHX_DIVISION_BY_ZERO"
	CodeUnknownOperation Code = "UNKNOWN_OPERATION"

	// Dispatch and plugins
	CodeCommandNotFound Code = "COMMAND_NOT_FOUND"
	CodePluginImport    Code = "PLUGIN_IMPORT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidFormat,
		CodeDivisionByZero, CodeUnknownOperation,
		CodeCommandNotFound, CodePluginImport,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat:
		return "validation"
	case CodeDivisionByZero, CodeUnknownOperation:
		return "arithmetic"
	case CodeCommandNotFound, CodePluginImport:
		return "command"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

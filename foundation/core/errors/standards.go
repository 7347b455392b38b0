// File: standards.go
// Title: Error Standards for mcalc Modules
// Description: Module identifiers and the standard constructors every mcalc
//              package uses instead of fmt.Errorf or errors.New.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-01-25 v0.1.1: Fixed import and type reference issues
// - 2026-10-19 v0.2.0: Calculator, command, plugin and config constructors
// - 2026-10-20 v0.2.1: Line length constructor, module lookups read details directly

package errors

import (
	mcerror "github.com/msto63/mcalc/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleMathx      = "mathx"
	ModuleCalculator = "calculator"
	ModuleCommand    = "command"
	ModulePlugin     = "plugin"
	ModuleConfig     = "config"
	ModuleShell      = "shell"
)

// MathxDivisionByZero reports a division whose divisor equals zero
func MathxDivisionByZero(operation string) *mcerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Message("division by zero").
		Code(mcerror.CodeDivisionByZero).
		Severity(mcerror.SeverityLow).
		Build()
}

// MathxInvalidDecimal reports text that is not a decimal number
func MathxInvalidDecimal(input string) *mcerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation("parse").
		Messagef("invalid decimal format: %q", input).
		Code(mcerror.CodeInvalidInput).
		Severity(mcerror.SeverityLow).
		Detail("input", input).
		Build()
}

// InvalidOperands reports operand text that could not be converted
func InvalidOperands(operation, operand1, operand2 string, cause error) *mcerror.Error {
	return NewErrorBuilder(ModuleCalculator).
		Operation(operation).
		Messagef("invalid number input: %s or %s", operand1, operand2).
		Code(mcerror.CodeInvalidInput).
		Severity(mcerror.SeverityLow).
		Cause(cause).
		Detail("operand1", operand1).
		Detail("operand2", operand2).
		Build()
}

// InvalidFormat reports input with the wrong shape, e.g. a wrong token count
func InvalidFormat(module string, input interface{}, expectedFormat string) *mcerror.Error {
	return NewErrorBuilder(module).
		Operation("parse").
		Messagef("invalid input format, expected %s", expectedFormat).
		Code(mcerror.CodeInvalidFormat).
		Severity(mcerror.SeverityLow).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// UnknownOperation reports an operation name outside the supported set
func UnknownOperation(name string) *mcerror.Error {
	return NewErrorBuilder(ModuleCalculator).
		Operation("lookup").
		Messagef("unknown operation: %s", name).
		Code(mcerror.CodeUnknownOperation).
		Severity(mcerror.SeverityLow).
		Detail("name", name).
		Build()
}

// CommandNotFound reports a dispatcher lookup miss
func CommandNotFound(name string) *mcerror.Error {
	return NewErrorBuilder(ModuleCommand).
		Operation("execute").
		Messagef("unknown command: %s", name).
		Code(mcerror.CodeCommandNotFound).
		Severity(mcerror.SeverityLow).
		Detail("name", name).
		Build()
}

// PluginImport reports a plugin that could not be activated
func PluginImport(plugin string, cause error) *mcerror.Error {
	return NewErrorBuilder(ModulePlugin).
		Operation("import").
		Messagef("import plugin %s", plugin).
		Code(mcerror.CodePluginImport).
		Severity(mcerror.SeverityMedium).
		Cause(cause).
		Detail("plugin", plugin).
		Build()
}

// ConfigError reports an unreadable or invalid configuration
func ConfigError(operation string, cause error) *mcerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Message("configuration error").
		Code(mcerror.CodeConfigError).
		Severity(mcerror.SeverityMedium).
		Cause(cause).
		Build()
}

// InvalidConfig reports a configuration value that failed validation
func InvalidConfig(field string, cause error) *mcerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Messagef("invalid value for %s", field).
		Code(mcerror.CodeInvalidConfig).
		Severity(mcerror.SeverityMedium).
		Cause(cause).
		Detail("field", field).
		Build()
}

// LineTooLong reports an input line longer than limit bytes
func LineTooLong(limit int) *mcerror.Error {
	return NewErrorBuilder(ModuleCommand).
		Operation("read").
		Messagef("input line longer than %d bytes", limit).
		Code(mcerror.CodeInvalidInput).
		Severity(mcerror.SeverityLow).
		Detail("limit", limit).
		Build()
}

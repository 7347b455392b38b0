// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     logging
// Description: Key/value logger used by the internal packages
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	mclog "github.com/msto63/mcalc/foundation/core/log"
)

// Logger wraps the foundation logger with key/value call sites
type Logger struct {
	*mclog.Logger
	name string
}

// New creates a logger with the default configuration
func New(name string) *Logger {
	return &Logger{
		Logger: NewSimpleLogger(name),
		name:   name,
	}
}

// Wrap adapts an existing foundation logger
func Wrap(l *mclog.Logger) *Logger {
	return &Logger{Logger: l, name: l.GetName()}
}

// Named returns a child logger for a sub-component
func (l *Logger) Named(component string) *Logger {
	name := component
	if l.name != "" {
		name = l.name + "." + component
	}
	return &Logger{Logger: l.Logger.WithName(name), name: name}
}

// WithSession returns a logger that tags every entry with the session ID
func (l *Logger) WithSession(sessionID string) *Logger {
	return &Logger{Logger: l.Logger.WithCorrelationID(sessionID), name: l.name}
}

// With returns a logger that adds the key/value pairs to every entry
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{Logger: l.Logger.WithFields(toFields(keysAndValues...)), name: l.name}
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to mclog.Fields. A trailing key
// without a value is dropped.
func toFields(keysAndValues ...interface{}) mclog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mclog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}

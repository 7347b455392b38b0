// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mclog "github.com/msto63/mcalc/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format (json, text, console, logfmt)
	Format string

	// Output writer, stderr when nil. Stdout belongs to the calculator.
	Output io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a new foundation logger. Unknown level or format
// strings fall back to warn and text.
func NewLogger(cfg LoggerConfig) *mclog.Logger {
	level, err := mclog.ParseLevel(cfg.Level)
	if err != nil {
		level = mclog.LevelWarn
	}

	format, err := mclog.ParseFormat(cfg.Format)
	if err != nil {
		format = mclog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	return mclog.NewWithConfig(mclog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: level <= mclog.LevelDebug,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *mclog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// NewDiscardLogger creates a logger that drops everything
func NewDiscardLogger(name string) *Logger {
	cfg := DefaultLoggerConfig(name)
	cfg.Output = io.Discard
	return Wrap(NewLogger(cfg))
}

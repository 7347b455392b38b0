// Package log provides structured logging for mcalc.
//
// Package: log
// Title: mcalc Structured Logging Framework
// Description: This package implements structured logging with levels,
//              context fields, correlation IDs and JSON, text, console and
//              logfmt output. It understands the core error type and logs
//              its code and severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Synchronous writer only, sorted text fields
//
// Usage:
//   import mclog "github.com/msto63/mcalc/foundation/core/log"
//
//   logger := mclog.NewWithConfig(mclog.Config{
//     Level:  mclog.LevelInfo,
//     Format: mclog.FormatText,
//     Name:   "mcalc",
//   }).
//     WithFields(mclog.Fields{"component": "shell"}).
//     WithCorrelationID(sessionID)
//
//   logger.Info("plugin loaded", mclog.Fields{"plugin": "add"})
//   logger.LogError(err)
package log

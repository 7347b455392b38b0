package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	mclog "github.com/msto63/mcalc/foundation/core/log"
)

func newJSONLogger(buf *bytes.Buffer, level string) *Logger {
	return Wrap(NewLogger(LoggerConfig{
		Name:   "test",
		Level:  level,
		Format: "json",
		Output: buf,
	}))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("mcalc")

	if cfg.Name != "mcalc" {
		t.Errorf("Name = %v, want mcalc", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		input string
		want  mclog.Level
	}{
		{"debug", mclog.LevelDebug},
		{"info", mclog.LevelInfo},
		{"warning", mclog.LevelWarn},
		{"error", mclog.LevelError},
		{"invalid", mclog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			logger := NewLogger(LoggerConfig{Level: tt.input})
			if logger.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", logger.GetLevel(), tt.want)
			}
		})
	}
}

func TestLogger_KeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf, "debug")

	logger.Info("message", "key1", "value1", "key2", 42, "orphan")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0]["key1"] != "value1" {
		t.Errorf("key1 = %v, want value1", entries[0]["key1"])
	}
	if entries[0]["key2"] != float64(42) {
		t.Errorf("key2 = %v, want 42", entries[0]["key2"])
	}
	if _, ok := entries[0]["orphan"]; ok {
		t.Error("orphan key without value should be dropped")
	}
}

func TestLogger_SessionAndComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf, "info").Named("shell").WithSession("session-1").With("mode", "interactive")

	logger.Warn("unknown command", "input", "foo")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	entry := entries[0]
	if entry["logger"] != "test.shell" {
		t.Errorf("logger = %v, want test.shell", entry["logger"])
	}
	if entry["correlation_id"] != "session-1" {
		t.Errorf("correlation_id = %v, want session-1", entry["correlation_id"])
	}
	if entry["mode"] != "interactive" || entry["input"] != "foo" {
		t.Errorf("fields = %v", entry)
	}
	if logger.Name() != "test.shell" {
		t.Errorf("Name() = %q", logger.Name())
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf, "warn")

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Error("shown")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 || entries[0]["message"] != "shown" {
		t.Errorf("entries = %v, want only the error entry", entries)
	}
}

func TestNewDiscardLogger(t *testing.T) {
	logger := NewDiscardLogger("quiet")
	logger.Error("dropped", "key", "value")

	if logger.Name() != "quiet" {
		t.Errorf("Name() = %q, want quiet", logger.Name())
	}
}

func TestToFields(t *testing.T) {
	if fields := toFields(); fields != nil {
		t.Error("toFields() with no args should return nil")
	}

	fields := toFields(123, "value")
	if len(fields) != 0 {
		t.Errorf("Non-string key should be skipped, got %v fields", len(fields))
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	logger := NewDiscardLogger("benchmark")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", "iteration", i)
	}
}

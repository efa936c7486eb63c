package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"loud":  zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestNewFileLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "addressit.log")
	logger, err := NewFileLogger("warn", "json", ServiceName, path)
	if err != nil {
		t.Fatalf("new file logger: %v", err)
	}
	logger.Info("dropped")
	logger.Warn("kept")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected only the warn line, got %q", raw)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["msg"] != "kept" || entry["service_name"] != ServiceName {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Fatalf("expected timestamp key: %v", entry)
	}
}

func TestNewLoggerConsole(t *testing.T) {
	logger, err := NewLogger("debug", "console", "")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("expected debug level enabled")
	}
}

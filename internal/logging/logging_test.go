package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_Disabled(t *testing.T) {
	logger, closeFn, err := New(false, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeFn()
	if logger.Core().Enabled(zap.DebugLevel) {
		t.Error("disabled logger should not accept debug records")
	}
}

func TestNew_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "debug.log")

	logger, closeFn, err := New(true, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("repeat created", zap.String("day", "Wednesday"))
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want start, record and end", len(lines))
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if entry["msg"] != "repeat created" || entry["day"] != "Wednesday" {
		t.Errorf("unexpected entry %v", entry)
	}
	if entry["level"] != "debug" {
		t.Errorf("level = %v, want debug", entry["level"])
	}
}

func TestConsole_Disabled(t *testing.T) {
	if Console(false).Core().Enabled(zap.ErrorLevel) {
		t.Error("disabled console logger should drop everything")
	}
}

package debug

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected to a pipe and returns
// everything written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe failed: %v", err)
	}
	os.Stderr = w
	defer func() { os.Stderr = old }()

	fn()
	w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	return string(data)
}

func TestDebugOutput(t *testing.T) {
	SetNoColor(true)
	defer SetDebug(false)

	t.Run("disabled mode prints nothing", func(t *testing.T) {
		SetDebug(false)
		out := captureStderr(t, func() {
			Debug("hidden %s", "message")
			DebugValue("key", "value")
			DebugSection("hidden section")
		})
		if out != "" {
			t.Errorf("Expected no output with debug disabled, got %q", out)
		}
	})

	t.Run("Debug prints the formatted message", func(t *testing.T) {
		SetDebug(true)
		out := captureStderr(t, func() {
			Debug("resolved %s", "acme")
		})
		if !strings.Contains(out, "[DEBUG]") || !strings.Contains(out, "resolved acme") {
			t.Errorf("Unexpected debug line: %q", out)
		}
	})

	t.Run("DebugValue prints key = value", func(t *testing.T) {
		SetDebug(true)
		out := captureStderr(t, func() {
			DebugValue("toolRoot", "/tmp/tool")
		})
		if !strings.Contains(out, "toolRoot = /tmp/tool") {
			t.Errorf("Unexpected value line: %q", out)
		}
	})

	t.Run("DebugSection prints a delimited header", func(t *testing.T) {
		SetDebug(true)
		out := captureStderr(t, func() {
			DebugSection("lock validation")
		})
		if !strings.Contains(out, "=== lock validation ===") {
			t.Errorf("Unexpected section line: %q", out)
		}
	})
}

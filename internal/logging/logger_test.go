package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestStdLoggerFormatsLevelAndComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(log.New(&buf, "", 0), "report", false)

	logger.Debug("hidden %d", 1)
	logger.Warn("request failed: %s", "boom")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug output to be suppressed, got %q", out)
	}
	if !strings.Contains(out, "WARN [report] request failed: boom") {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestStdLoggerDebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := New(log.New(&buf, "", 0), "", true)

	logger.Debug("shown")
	if got := strings.TrimSpace(buf.String()); got != "DEBUG shown" {
		t.Fatalf("expected debug line, got %q", got)
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatalf("expected no-op logger for nil input")
	}
	OrNop(nil).Error("ignored")
}

func TestDebugFromEnv(t *testing.T) {
	t.Setenv(EnvDebug, "yes")
	if !DebugFromEnv() {
		t.Fatalf("expected debug enabled")
	}
	t.Setenv(EnvDebug, "0")
	if DebugFromEnv() {
		t.Fatalf("expected debug disabled")
	}
}

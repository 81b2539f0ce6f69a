package logging

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// EnvDebug enables debug-level output when set to a truthy value.
const EnvDebug = "INTIMATE_DEBUG"

// Logger defines a minimal, printf-style logging contract.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Nop returns a logger that discards all output.
func Nop() Logger {
	return nopLogger{}
}

// OrNop returns logger when non-nil, otherwise a no-op logger.
func OrNop(logger Logger) Logger {
	if logger == nil {
		return Nop()
	}
	return logger
}

type stdLogger struct {
	out       *log.Logger
	component string
	debug     bool
}

// New returns a logger scoped to component that writes through out. A nil
// out uses the standard library's default logger, which is where
// tea.LogToFile points its output.
func New(out *log.Logger, component string, debug bool) Logger {
	if out == nil {
		out = log.Default()
	}
	return &stdLogger{out: out, component: component, debug: debug}
}

func (l *stdLogger) Debug(format string, args ...any) {
	if !l.debug {
		return
	}
	l.emit("DEBUG", format, args...)
}

func (l *stdLogger) Info(format string, args ...any)  { l.emit("INFO", format, args...) }
func (l *stdLogger) Warn(format string, args ...any)  { l.emit("WARN", format, args...) }
func (l *stdLogger) Error(format string, args ...any) { l.emit("ERROR", format, args...) }

func (l *stdLogger) emit(level string, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if l.component != "" {
		msg = "[" + l.component + "] " + msg
	}
	l.out.Printf("%s %s", level, msg)
}

// DebugFromEnv reports whether EnvDebug is set to a truthy value.
func DebugFromEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvDebug))) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

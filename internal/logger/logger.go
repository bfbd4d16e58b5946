// Package logger provides the leveled logger used across ottotimer.
// There are three levels: off (no output), normal (info/warn/error)
// and verbose (adds debug). Audio callbacks, the terminal program and
// the control loop all log from their own goroutines, so a Logger is
// safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level controls the verbosity of the logger.
type Level int32

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

// String returns the name accepted by ParseLevel.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelNormal:
		return "normal"
	case LevelVerbose:
		return "verbose"
	default:
		return "unknown"
	}
}

// ParseLevel maps a config/env value onto a Level. Matching is
// case-insensitive; "debug" is accepted as an alias for verbose and
// "quiet" for off.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "quiet":
		return LevelOff, nil
	case "", "normal", "info":
		return LevelNormal, nil
	case "verbose", "debug":
		return LevelVerbose, nil
	default:
		return LevelNormal, fmt.Errorf("unknown log level %q", s)
	}
}

// severity tags a single line and names the level it needs.
type severity struct {
	tag string
	min Level
}

var (
	sevDebug = severity{"[DBG] ", LevelVerbose}
	sevInfo  = severity{"[INF] ", LevelNormal}
	sevWarn  = severity{"[WRN] ", LevelNormal}
	sevError = severity{"[ERR] ", LevelNormal}
)

// Logger writes tagged lines through one *log.Logger. The level can be
// changed while other goroutines are logging.
type Logger struct {
	level atomic.Int32
	out   *log.Logger
}

// New creates a logger with the given level, writing to out.
// If out is nil, os.Stderr is used.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	l := &Logger{out: log.New(out, "", log.Ltime|log.Lmicroseconds)}
	l.SetLevel(level)
	return l
}

// SetLevel changes the log level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

// Debug logs at debug level (verbose only).
func (l *Logger) Debug(format string, args ...any) { l.emit(sevDebug, format, args) }

// Info logs at info level.
func (l *Logger) Info(format string, args ...any) { l.emit(sevInfo, format, args) }

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...any) { l.emit(sevWarn, format, args) }

// Error logs at error level.
func (l *Logger) Error(format string, args ...any) { l.emit(sevError, format, args) }

func (l *Logger) emit(s severity, format string, args []any) {
	if Level(l.level.Load()) < s.min {
		return
	}
	l.out.Output(3, s.tag+fmt.Sprintf(format, args...))
}

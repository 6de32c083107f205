package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLevel is returned when a level name or number cannot be
// parsed. Callers can test for it with errors.Is.
var ErrInvalidLevel = errors.New("invalid log level")

// Level represents the severity of a log entry
type Level int8

const (
	// TraceLevel for the most detailed messages
	TraceLevel Level = iota
	// DebugLevel for messages useful when debugging internals
	DebugLevel
	// InfoLevel for informational messages about normal operation
	InfoLevel
	// WarningLevel for conditions that are wrong but survivable
	WarningLevel
	// ErrorLevel for conditions where something has gone wrong
	ErrorLevel
	// FatalLevel for conditions where something has gone horribly wrong
	FatalLevel
	// OffLevel sits above every real level and admits nothing
	OffLevel
)

// String returns the canonical lowercase name of the level. These are
// the same names ParseLevel accepts.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarningLevel:
		return "warning"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	case OffLevel:
		return "off"
	default:
		return "unknown"
	}
}

// Tag returns the uppercase name used in rendered output, e.g. "INFO".
func (l Level) Tag() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	case OffLevel:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= OffLevel
}

// ParseLevel converts a level name or a numeric string ("0".."6") to a
// Level. Names are matched case-insensitively. Unknown input returns an
// error wrapping ErrInvalidLevel; the input is never clamped.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warning":
		return WarningLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	case "off":
		return OffLevel, nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return LevelFromInt(n)
	}
	return OffLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// LevelFromInt converts an integer on the 0..6 scale to a Level.
// Out-of-range values return an error wrapping ErrInvalidLevel.
func LevelFromInt(n int) (Level, error) {
	if n < int(TraceLevel) || n > int(OffLevel) {
		return OffLevel, fmt.Errorf("%w: %d out of range [0,6]", ErrInvalidLevel, n)
	}
	return Level(n), nil
}

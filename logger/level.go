package logger

import (
	"github.com/radiohost/radlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel   = core.TraceLevel
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	WarningLevel = core.WarningLevel
	ErrorLevel   = core.ErrorLevel
	FatalLevel   = core.FatalLevel
	OffLevel     = core.OffLevel
)

// ParseLevel converts a level name or numeric string to a Level. It
// fails with core.ErrInvalidLevel on unknown input.
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}

package logger

import (
	"github.com/radiohost/radlog/core"
)

// debugComponent tags output from the site-inspection helpers.
const debugComponent = "DEBUG"

// Here logs the call site (file:line and function) at debug level.
// Useful as a breadcrumb while chasing control flow.
func Here() {
	s := newStatement(currentRegistry(), core.DebugLevel, debugComponent, callerSkip)
	if s.enabled {
		s.Appendf("%s:%d (%s)", s.caller.ShortFile, s.caller.Line, s.caller.Function)
	}
	s.End()
}

// Var logs a named variable at debug level, as "name = value".
func Var(name string, value interface{}) {
	newStatement(currentRegistry(), core.DebugLevel, debugComponent, callerSkip).
		Append(name, " = ", value).End()
}

// HexVar logs a named integer at debug level in hex, as
// "name = 0xdeadbeef".
func HexVar(name string, value interface{}) {
	newStatement(currentRegistry(), core.DebugLevel, debugComponent, callerSkip).
		Append(name, " = 0x", Hex, value).End()
}

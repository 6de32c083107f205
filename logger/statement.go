package logger

import (
	"bytes"
	"fmt"
	"strconv"
	"sync"

	"github.com/radiohost/radlog/core"
	"github.com/radiohost/radlog/registry"
)

// Manip is a stream-control value understood by Append, in the spirit
// of iostream manipulators. Manipulators produce no output themselves;
// they change how subsequent values are rendered.
type Manip uint8

const (
	// Hex renders subsequent integers as zero-padded hexadecimal
	Hex Manip = iota + 1
	// Dec restores decimal rendering of integers
	Dec
	// Quote quotes the next appended string
	Quote
)

// Statement is a call-site-scoped log builder. It accumulates message
// fragments and hands the finished entry to the registry exactly once
// when End is called. A Statement is not safe for concurrent use and
// must not be touched after End.
type Statement struct {
	reg       *registry.Registry
	level     core.Level
	component string
	caller    core.CallerInfo
	threadID  uint64
	buf       *bytes.Buffer
	enabled   bool
	done      bool
	hex       bool
	quote     bool
}

// statementPool recycles Statement objects; a filtered-out call site
// costs one pool round-trip and one WouldLog check.
var statementPool = sync.Pool{
	New: func() interface{} {
		return &Statement{}
	},
}

// newStatement builds a statement for the given registry. The enabled
// decision is made here, once; caller and goroutine id are only
// captured when the message can actually reach a backend. callerSkip
// counts stack frames between core.GetCaller and the user's call site.
func newStatement(reg *registry.Registry, level core.Level, component string, callerSkip int) *Statement {
	s := statementPool.Get().(*Statement)
	s.reg = reg
	s.level = level
	s.component = component
	s.caller = core.CallerInfo{}
	s.threadID = 0
	s.buf = nil
	s.done = false
	s.hex = false
	s.quote = false

	s.enabled = reg.WouldLog(component, level)
	if s.enabled {
		s.caller = core.GetCaller(callerSkip)
		s.threadID = core.GoroutineID()
		s.buf = core.GetBuffer()
	}
	return s
}

// NewStatement creates a statement against the current registry. The
// recorded call site is the caller of NewStatement.
func NewStatement(level Level, component string) *Statement {
	return newStatement(currentRegistry(), level, component, callerSkip)
}

// callerSkip is the number of frames between core.GetCaller and the
// user's call site when going through one package-level helper.
const callerSkip = 3

// Enabled reports whether this statement can reach any backend. The
// result was computed once at construction.
func (s *Statement) Enabled() bool {
	return s.enabled
}

// Append renders the values into the message in call order. It is a
// no-op when the statement is filtered out or already ended. Append
// never fails; a value whose rendering panics degrades to a
// placeholder.
func (s *Statement) Append(vals ...interface{}) *Statement {
	if !s.enabled || s.done {
		return s
	}
	for _, v := range vals {
		s.appendValue(v)
	}
	return s
}

// Appendf renders one fmt-formatted fragment into the message.
func (s *Statement) Appendf(format string, args ...interface{}) *Statement {
	if !s.enabled || s.done {
		return s
	}
	defer s.recoverAppend()
	fmt.Fprintf(s.buf, format, args...)
	return s
}

// appendValue writes a single value, honoring the active manipulators.
func (s *Statement) appendValue(v interface{}) {
	defer s.recoverAppend()

	switch t := v.(type) {
	case Manip:
		switch t {
		case Hex:
			s.hex = true
		case Dec:
			s.hex = false
		case Quote:
			s.quote = true
		}
	case string:
		if s.quote {
			s.quote = false
			s.buf.WriteString(strconv.Quote(t))
		} else {
			s.buf.WriteString(t)
		}
	case int:
		s.appendInt(int64(t))
	case int8:
		s.appendInt(int64(t))
	case int16:
		s.appendInt(int64(t))
	case int32:
		s.appendInt(int64(t))
	case int64:
		s.appendInt(t)
	case uint:
		s.appendUint(uint64(t))
	case uint8:
		s.appendUint(uint64(t))
	case uint16:
		s.appendUint(uint64(t))
	case uint32:
		s.appendUint(uint64(t))
	case uint64:
		s.appendUint(t)
	case uintptr:
		s.appendUint(uint64(t))
	case bool:
		s.buf.Write(strconv.AppendBool(s.buf.AvailableBuffer(), t))
	case error:
		s.buf.WriteString(t.Error())
	case fmt.Stringer:
		s.buf.WriteString(t.String())
	default:
		fmt.Fprintf(s.buf, "%v", t)
	}
}

func (s *Statement) appendInt(n int64) {
	if s.hex {
		fmt.Fprintf(s.buf, "%08x", n)
		return
	}
	s.buf.Write(strconv.AppendInt(s.buf.AvailableBuffer(), n, 10))
}

func (s *Statement) appendUint(n uint64) {
	if s.hex {
		fmt.Fprintf(s.buf, "%08x", n)
		return
	}
	s.buf.Write(strconv.AppendUint(s.buf.AvailableBuffer(), n, 10))
}

// recoverAppend swallows a panic from rendering a single value (a
// buggy String or Error method) and records a placeholder instead. The
// statement as a whole stays usable.
func (s *Statement) recoverAppend() {
	if p := recover(); p != nil {
		s.buf.WriteString("%!PANIC")
	}
}

// End builds the entry and dispatches it. The dispatch happens exactly
// once; calling End on an ended statement is a no-op. The statement is
// recycled by End and must not be used afterwards. A filtered-out
// statement ends without touching the registry.
func (s *Statement) End() {
	if s.done {
		return
	}
	s.done = true

	if s.enabled {
		e := core.GetEntry()
		e.Level = s.level
		e.File = s.caller.File
		e.Line = s.caller.Line
		e.Component = s.component
		e.ThreadID = s.threadID
		e.Message = s.buf.String()
		s.reg.Dispatch(e)

		core.PutBuffer(s.buf)
		s.buf = nil
	}

	s.reg = nil
	statementPool.Put(s)
}

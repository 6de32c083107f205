package backend

import (
	"io"
	"os"
	"strconv"

	"github.com/radiohost/radlog/core"
)

// ConsoleName is the conventional registry name for the console backend.
const ConsoleName = "console"

// ConsoleConfig holds configuration for the console backend
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// ShowTime prepends a bracketed timestamp tag
	ShowTime bool
	// ShowThread prepends the emitting goroutine id
	ShowThread bool
	// ShowSource prepends a file:line tag
	ShowSource bool
	// TimestampFormat used by ShowTime (default: "2006-01-02 15:04:05.000000")
	TimestampFormat string
}

// Console renders entries as space-separated bracket tags followed by
// the message, one line per entry.
type Console struct {
	ConsoleConfig
}

// NewConsole creates a console backend
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = "2006-01-02 15:04:05.000000"
	}
	return &Console{ConsoleConfig: cfg}
}

// Write renders one entry and writes it to the configured writer.
func (c *Console) Write(entry *core.Entry) error {
	buf := core.GetBuffer()
	defer core.PutBuffer(buf)

	if c.ShowTime {
		buf.WriteByte('[')
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), c.TimestampFormat))
		buf.WriteString("] ")
	}
	if c.ShowThread {
		buf.WriteString("[0x")
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), entry.ThreadID, 16))
		buf.WriteString("] ")
	}
	if c.ShowSource {
		buf.WriteByte('[')
		buf.WriteString(shortFile(entry.File))
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Line), 10))
		buf.WriteString("] ")
	}

	buf.WriteByte('[')
	buf.WriteString(entry.Level.Tag())
	buf.WriteString("] [")
	buf.WriteString(entry.Component)
	buf.WriteString("] ")
	buf.WriteString(entry.Message)
	buf.WriteByte('\n')

	_, err := c.Writer.Write(buf.Bytes())
	return err
}

// shortFile trims the directory from a source path without allocating
// through path/filepath.
func shortFile(file string) string {
	for i := len(file) - 1; i >= 0; i-- {
		if file[i] == '/' {
			return file[i+1:]
		}
	}
	return file
}

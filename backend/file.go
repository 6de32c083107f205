package backend

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/radiohost/radlog/core"
)

// FileName is the conventional registry name for the file backend.
const FileName = "file"

// File appends one CSV record per entry to a log file. The file is
// opened on the first delivered entry, not at construction, so merely
// configuring a file backend never touches the filesystem.
type File struct {
	path string
	f    *os.File
	w    *csv.Writer
}

// NewFile creates a file backend for the given path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Write appends the entry as a CSV record. Open and write errors are
// returned to the registry, which isolates them from the logging caller.
func (f *File) Write(entry *core.Entry) error {
	if f.w == nil {
		file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		f.f = file
		f.w = csv.NewWriter(file)
	}

	record := []string{
		entry.Time.Format(time.RFC3339Nano),
		"0x" + strconv.FormatUint(entry.ThreadID, 16),
		shortFile(entry.File) + ":" + strconv.Itoa(entry.Line),
		entry.Level.String(),
		entry.Component,
		entry.Message,
	}
	if err := f.w.Write(record); err != nil {
		return err
	}
	f.w.Flush()
	return f.w.Error()
}

// Close flushes and closes the underlying file. Closing a backend that
// never received an entry is a no-op.
func (f *File) Close() error {
	if f.f == nil {
		return nil
	}
	f.w.Flush()
	err := f.w.Error()
	if closeErr := f.f.Close(); err == nil {
		err = closeErr
	}
	f.f = nil
	f.w = nil
	return err
}

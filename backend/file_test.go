package backend

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/radiohost/radlog/core"
)

func TestFile_WritesCSVRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radlog.csv")
	f := NewFile(path)

	first := testEntry()
	second := testEntry()
	second.Level = core.ErrorLevel
	second.Component = "RFNOC"
	second.Message = `contains, "comma" and quotes`

	if err := f.Write(first); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := f.Write(second); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV back: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	rec := records[0]
	if len(rec) != 6 {
		t.Fatalf("record has %d fields, want 6: %v", len(rec), rec)
	}
	if _, err := time.Parse(time.RFC3339Nano, rec[0]); err != nil {
		t.Errorf("timestamp field %q not RFC3339Nano: %v", rec[0], err)
	}
	if rec[1] != "0x1234" {
		t.Errorf("thread field = %q, want 0x1234", rec[1])
	}
	if rec[2] != "x300.go:42" {
		t.Errorf("source field = %q, want x300.go:42", rec[2])
	}
	if rec[3] != "info" {
		t.Errorf("level field = %q, want info", rec[3])
	}
	if rec[4] != "X300" {
		t.Errorf("component field = %q, want X300", rec[4])
	}

	if records[1][5] != `contains, "comma" and quotes` {
		t.Errorf("message with CSV metacharacters came back as %q", records[1][5])
	}
}

func TestFile_LazyOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.csv")
	f := NewFile(path)

	// No entry delivered: the file must not exist and Close is a no-op.
	if err := f.Close(); err != nil {
		t.Errorf("Close() on unopened backend: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file %s exists without any delivered entry", path)
	}
}

func TestFile_AppendsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radlog.csv")

	f := NewFile(path)
	if err := f.Write(testEntry()); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	// A new backend on the same path appends, never truncates.
	g := NewFile(path)
	if err := g.Write(testEntry()); err != nil {
		t.Fatal(err)
	}
	if err := g.Close(); err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records after reopen, want 2", len(records))
	}
}

func TestFile_OpenErrorSurfaces(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "missing-dir", "radlog.csv"))
	if err := f.Write(testEntry()); err == nil {
		t.Error("Write() = nil, want open error for missing directory")
	}
}

func TestSpy(t *testing.T) {
	s := NewSpy()
	e := testEntry()
	if err := s.Write(e); err != nil {
		t.Fatal(err)
	}

	// Mutating the original must not affect the captured copy
	e.Message = "mutated"
	got := s.Entries()
	if len(got) != 1 || got[0].Message != "this is an informational log message" {
		t.Errorf("captured entries = %+v", got)
	}
	if msgs := s.Messages(); len(msgs) != 1 || msgs[0] != "this is an informational log message" {
		t.Errorf("Messages() = %v", msgs)
	}

	s.Reset()
	if len(s.Entries()) != 0 {
		t.Error("entries remain after Reset()")
	}
}

package core

import (
	"testing"
)

func TestEntryPool(t *testing.T) {
	// Get an entry from the pool
	e1 := GetEntry()
	if e1 == nil {
		t.Fatal("GetEntry() returned nil")
	}

	// Add some data
	e1.Message = "test"
	e1.Component = "TEST"
	e1.Line = 42

	// Return to pool
	PutEntry(e1)

	// Get another entry
	e2 := GetEntry()
	if e2 == nil {
		t.Fatal("GetEntry() returned nil after PutEntry()")
	}

	// Verify it's clean
	if e2.Message != "" {
		t.Errorf("Expected empty message after pool reset, got %q", e2.Message)
	}
	if e2.Component != "" {
		t.Errorf("Expected empty component after pool reset, got %q", e2.Component)
	}
	if e2.Line != 0 {
		t.Errorf("Expected zero line after pool reset, got %d", e2.Line)
	}
	if e2.Time.IsZero() {
		t.Error("Expected GetEntry() to stamp the current time")
	}
}

func TestGetCaller(t *testing.T) {
	caller := GetCaller(0)
	if !caller.Defined {
		t.Fatal("GetCaller() returned undefined CallerInfo")
	}

	if caller.File == "" {
		t.Error("Expected non-empty file")
	}
	if caller.ShortFile == "" {
		t.Error("Expected non-empty short file")
	}
	if caller.Line == 0 {
		t.Error("Expected non-zero line number")
	}
	if caller.Function == "" {
		t.Error("Expected non-empty function name")
	}
}

func BenchmarkGetEntry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := GetEntry()
		PutEntry(e)
	}
}

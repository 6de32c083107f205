// Package core defines the shared types used across the radlog facility.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event, and small helpers for capturing the
// call site and the emitting goroutine.
//
// Entry objects are pooled via sync.Pool to keep the dispatch path
// allocation-free. The registry recycles an Entry once every sink has
// returned, so a sink that wants to buffer an entry beyond its own call
// must copy the fields it keeps.
//
// Levels form a total order (trace < debug < info < warning < error <
// fatal) with an Off sentinel above all real levels. A level s passes a
// threshold t iff s >= t; both the global threshold and each backend
// threshold use the same comparison.
package core

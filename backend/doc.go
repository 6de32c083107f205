// Package backend provides the built-in sinks: Console, which writes
// tagged plain text to a terminal stream, and File, which appends CSV
// rows to a log file. Both satisfy registry.Sink.
//
// Rendering formats are backend-local. The console line is
//
//	[INFO] [X300] device ready
//
// with optional timestamp, thread-id, and source tags enabled through
// ConsoleConfig. The file format is one CSV record per entry:
// timestamp, thread, source, level, component, message.
//
// The registry serializes delivery, so sinks here do not lock around
// their writers. A sink that is shared between two registries would
// need its own synchronization.
//
// The Spy sink captures entries by value and exists for tests.
package backend

// Package registry implements the logging core: process-wide state that
// maps backend names to sinks and per-backend thresholds, plus one
// global threshold that acts as a floor for every backend.
//
// A single mutex guards all registry state. Dispatch walks the backends
// in registration order while holding that lock, so delivery is strictly
// serialized: no sink is ever invoked concurrently with itself and no
// dispatch observes a half-registered backend. The lock covers sink
// execution time as well; a slow sink stalls all logging for its
// duration. That is a deliberate trade of throughput for simplicity and
// deterministic ordering.
//
// A sink that returns an error or panics never affects the logging
// caller or the remaining backends. Failures are counted, handed to the
// registry's error handler (stderr by default), and otherwise dropped;
// the facility cannot log its own failures through itself.
//
// Most programs use the shared Default() registry through the logger
// package and never construct a Registry directly.
package registry

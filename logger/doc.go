// Package logger is the public API of radlog. Most users only need to
// import this package.
//
// Each log call creates a short-lived Statement bound to a severity and
// a component tag. The statement decides once, at construction, whether
// any backend could accept the message; when the answer is no, every
// append is a no-op and the call site pays only that single predicate
// check. Appended values are rendered into a pooled buffer in call
// order and the finished entry is dispatched exactly once by End:
//
//	st := logger.Info("X300")
//	defer st.End()
//	st.Append("device ready after ", elapsed)
//
// The deferred End guarantees dispatch on every exit path, including a
// panic unwinding through the same scope. One-shot helpers skip the
// ceremony:
//
//	logger.Warningf("B200", "usb transfer short: %d/%d", got, want)
//
// Append understands manipulator values in the spirit of iostream
// controls: Hex switches integer rendering to zero-padded hex, Dec
// switches back, Quote quotes the next string.
//
// Statements dispatch into the shared registry (registry.Default) unless
// SetRegistry installs another one. Configuration of thresholds and
// backends is forwarded through SetGlobalLevel, SetBackendLevel,
// AddBackend and friends.
package logger

package logger

import (
	"sync"

	"github.com/radiohost/radlog/core"
	"github.com/radiohost/radlog/registry"
)

var (
	defaultMu  sync.RWMutex
	defaultReg *registry.Registry
)

// currentRegistry returns the registry statements dispatch into. It
// falls back to the shared registry.Default when none was installed.
func currentRegistry() *registry.Registry {
	defaultMu.RLock()
	r := defaultReg
	defaultMu.RUnlock()
	if r != nil {
		return r
	}
	return registry.Default()
}

// SetRegistry replaces the registry used by this package. Passing nil
// restores the shared registry.Default.
func SetRegistry(r *registry.Registry) {
	defaultMu.Lock()
	defaultReg = r
	defaultMu.Unlock()
}

// Trace opens a trace-level statement for the given component.
func Trace(component string) *Statement {
	return newStatement(currentRegistry(), core.TraceLevel, component, callerSkip)
}

// Debug opens a debug-level statement for the given component.
func Debug(component string) *Statement {
	return newStatement(currentRegistry(), core.DebugLevel, component, callerSkip)
}

// Info opens an info-level statement for the given component.
func Info(component string) *Statement {
	return newStatement(currentRegistry(), core.InfoLevel, component, callerSkip)
}

// Warning opens a warning-level statement for the given component.
func Warning(component string) *Statement {
	return newStatement(currentRegistry(), core.WarningLevel, component, callerSkip)
}

// Error opens an error-level statement for the given component.
func Error(component string) *Statement {
	return newStatement(currentRegistry(), core.ErrorLevel, component, callerSkip)
}

// Fatal opens a fatal-level statement for the given component. Fatal is
// the highest severity tag and nothing more; the facility never
// terminates the process.
func Fatal(component string) *Statement {
	return newStatement(currentRegistry(), core.FatalLevel, component, callerSkip)
}

// Tracef logs one formatted trace message and ends the statement.
func Tracef(component, format string, args ...interface{}) {
	newStatement(currentRegistry(), core.TraceLevel, component, callerSkip).Appendf(format, args...).End()
}

// Debugf logs one formatted debug message and ends the statement.
func Debugf(component, format string, args ...interface{}) {
	newStatement(currentRegistry(), core.DebugLevel, component, callerSkip).Appendf(format, args...).End()
}

// Infof logs one formatted info message and ends the statement.
func Infof(component, format string, args ...interface{}) {
	newStatement(currentRegistry(), core.InfoLevel, component, callerSkip).Appendf(format, args...).End()
}

// Warningf logs one formatted warning message and ends the statement.
func Warningf(component, format string, args ...interface{}) {
	newStatement(currentRegistry(), core.WarningLevel, component, callerSkip).Appendf(format, args...).End()
}

// Errorf logs one formatted error message and ends the statement.
func Errorf(component, format string, args ...interface{}) {
	newStatement(currentRegistry(), core.ErrorLevel, component, callerSkip).Appendf(format, args...).End()
}

// Fatalf logs one formatted fatal message and ends the statement.
func Fatalf(component, format string, args ...interface{}) {
	newStatement(currentRegistry(), core.FatalLevel, component, callerSkip).Appendf(format, args...).End()
}

// SetGlobalLevel sets the global threshold on the current registry. No
// backend receives messages below it, regardless of the backend's own
// threshold.
func SetGlobalLevel(level Level) {
	currentRegistry().SetGlobalLevel(level)
}

// SetBackendLevel sets the threshold of one named backend on the
// current registry.
func SetBackendLevel(name string, level Level) error {
	return currentRegistry().SetBackendLevel(name, level)
}

// SetConsoleLevel is shorthand for SetBackendLevel("console", level).
func SetConsoleLevel(level Level) error {
	return currentRegistry().SetBackendLevel("console", level)
}

// SetFileLevel is shorthand for SetBackendLevel("file", level).
func SetFileLevel(level Level) error {
	return currentRegistry().SetBackendLevel("file", level)
}

// AddBackend registers or replaces a sink on the current registry.
func AddBackend(name string, sink registry.Sink) {
	currentRegistry().AddBackend(name, sink)
}

// RemoveBackend unregisters a sink from the current registry.
func RemoveBackend(name string) {
	currentRegistry().RemoveBackend(name)
}

// WouldLog reports whether a message with this component and severity
// would currently reach any backend.
func WouldLog(component string, level Level) bool {
	return currentRegistry().WouldLog(component, level)
}

package registry

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/multierr"

	"github.com/radiohost/radlog/core"
)

// ErrUnknownBackend is returned when a per-backend operation names a
// backend that is not registered.
var ErrUnknownBackend = errors.New("unknown backend")

// Sink receives accepted log entries. Write is never called
// concurrently with itself; each call may come from a different
// goroutine. The entry is recycled after Write returns, so a sink that
// buffers entries must copy the fields it keeps.
type Sink interface {
	Write(entry *core.Entry) error
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(entry *core.Entry) error

// Write calls f(entry).
func (f SinkFunc) Write(entry *core.Entry) error {
	return f(entry)
}

// ErrorHandler is called when a sink fails. It runs under the registry
// lock and must not log through the registry itself.
type ErrorHandler func(backend string, err error)

// backend pairs a sink with its threshold. Registration order is
// preserved in Registry.backends.
type backend struct {
	name  string
	sink  Sink
	level core.Level
}

// Registry is the process-wide backend registry. The zero value is not
// usable; create instances with New or use the shared Default.
type Registry struct {
	mu       sync.Mutex
	global   core.Level
	backends []*backend
	index    map[string]*backend
	onError  ErrorHandler
	metrics  metrics
}

// New creates an empty registry with the global threshold at InfoLevel.
func New() *Registry {
	return &Registry{
		global:  core.InfoLevel,
		index:   make(map[string]*backend),
		onError: stderrErrorHandler,
		metrics: newMetrics(),
	}
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared process-wide registry, creating it on
// first use. The logger package dispatches into this instance.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New()
	})
	return defaultReg
}

// stderrErrorHandler is the fallback for sink failures. The facility
// cannot log its own failures through itself, so they go to stderr.
func stderrErrorHandler(name string, err error) {
	fmt.Fprintf(os.Stderr, "radlog: backend %q: %v\n", name, err)
}

// SetErrorHandler replaces the sink failure handler. A nil handler
// silently discards failures (they are still counted).
func (r *Registry) SetErrorHandler(fn ErrorHandler) {
	r.mu.Lock()
	r.onError = fn
	r.mu.Unlock()
}

// SetGlobalLevel replaces the global threshold. It takes effect for
// subsequent dispatches; entries already in flight are unaffected.
func (r *Registry) SetGlobalLevel(level core.Level) {
	r.mu.Lock()
	r.global = level
	r.mu.Unlock()
}

// GlobalLevel returns the current global threshold.
func (r *Registry) GlobalLevel() core.Level {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.global
}

// AddBackend registers sink under name. Registering an existing name
// replaces the sink but keeps the backend's threshold and its position
// in the dispatch order. A new backend's threshold is seeded from the
// current global level.
func (r *Registry) AddBackend(name string, sink Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b, ok := r.index[name]; ok {
		b.sink = sink
		return
	}

	b := &backend{name: name, sink: sink, level: r.global}
	r.backends = append(r.backends, b)
	r.index[name] = b
}

// RemoveBackend unregisters the named backend. Removing a name that is
// not registered is a no-op. The sink is not closed; its owner is.
func (r *Registry) RemoveBackend(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[name]; !ok {
		return
	}
	delete(r.index, name)
	for i, b := range r.backends {
		if b.name == name {
			r.backends = append(r.backends[:i], r.backends[i+1:]...)
			break
		}
	}
}

// SetBackendLevel sets the threshold of one named backend. It fails
// with ErrUnknownBackend if the name is not registered; registry state
// is unchanged in that case.
func (r *Registry) SetBackendLevel(name string, level core.Level) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	b.level = level
	return nil
}

// BackendLevel returns the threshold of one named backend.
func (r *Registry) BackendLevel(name string) (core.Level, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.index[name]
	if !ok {
		return core.OffLevel, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return b.level, nil
}

// Backends returns the registered backend names in registration order.
func (r *Registry) Backends() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, len(r.backends))
	for i, b := range r.backends {
		names[i] = b.name
	}
	return names
}

// WouldLog reports whether any backend would currently admit a message
// of the given severity: the severity must pass the global floor and at
// least one backend threshold. The component tag does not participate
// in filtering; it is part of the signature so call sites and future
// filters share one predicate. WouldLog performs no allocation.
func (r *Registry) WouldLog(component string, level core.Level) bool {
	_ = component

	if level >= core.OffLevel || level < core.TraceLevel {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if level < r.global {
		return false
	}
	for _, b := range r.backends {
		if level >= b.level {
			return true
		}
	}
	return false
}

// Dispatch delivers entry to every backend whose effective threshold
// admits it, synchronously and in registration order. Dispatch takes
// ownership of the entry and recycles it after the last sink returns.
// Sink failures are isolated; Dispatch never reports an error.
func (r *Registry) Dispatch(entry *core.Entry) {
	// Off is a threshold sentinel, not a message severity.
	if entry.Level >= core.OffLevel || entry.Level < core.TraceLevel {
		core.PutEntry(entry)
		return
	}

	r.mu.Lock()
	if entry.Level >= r.global {
		delivered := false
		for _, b := range r.backends {
			if entry.Level < b.level {
				continue
			}
			r.deliver(b, entry)
			delivered = true
		}
		if delivered {
			r.metrics.Dispatched.WithLabelValues(entry.Level.String()).Inc()
		} else {
			r.metrics.Filtered.Inc()
		}
	} else {
		r.metrics.Filtered.Inc()
	}
	r.mu.Unlock()

	core.PutEntry(entry)
}

// deliver invokes one sink, converting a panic into a counted failure.
func (r *Registry) deliver(b *backend, entry *core.Entry) {
	defer func() {
		if p := recover(); p != nil {
			r.sinkFailure(b.name, fmt.Errorf("sink panic: %v", p))
		}
	}()

	if err := b.sink.Write(entry); err != nil {
		r.sinkFailure(b.name, err)
	}
}

// sinkFailure counts and reports a failed delivery. Runs under r.mu.
func (r *Registry) sinkFailure(name string, err error) {
	r.metrics.SinkErrors.WithLabelValues(name).Inc()
	if r.onError != nil {
		r.onError(name, err)
	}
}

// Close removes all backends and closes every sink that implements
// io.Closer, aggregating close errors. The registry stays usable
// afterwards but delivers nothing until backends are added again.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	for _, b := range r.backends {
		if c, ok := b.sink.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	r.backends = nil
	r.index = make(map[string]*backend)
	return err
}

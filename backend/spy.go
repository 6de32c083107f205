package backend

import (
	"sync"

	"github.com/radiohost/radlog/core"
)

// Spy is a test sink that captures delivered entries by value. It is
// safe for concurrent use so tests can assert from a different
// goroutine than the one logging.
type Spy struct {
	mu      sync.Mutex
	entries []core.Entry
}

// NewSpy creates an empty spy sink.
func NewSpy() *Spy {
	return &Spy{}
}

// Write records a copy of the entry.
func (s *Spy) Write(entry *core.Entry) error {
	s.mu.Lock()
	s.entries = append(s.entries, *entry)
	s.mu.Unlock()
	return nil
}

// Entries returns a copy of everything captured so far.
func (s *Spy) Entries() []core.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Messages returns just the message bodies, in delivery order.
func (s *Spy) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Message
	}
	return out
}

// Reset discards everything captured so far.
func (s *Spy) Reset() {
	s.mu.Lock()
	s.entries = s.entries[:0]
	s.mu.Unlock()
}

package benchmark

import (
	"github.com/radiohost/radlog/core"
	"github.com/radiohost/radlog/registry"
)

type noopSink struct{}

func newNoopSink() registry.Sink {
	return &noopSink{}
}

func (s *noopSink) Write(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

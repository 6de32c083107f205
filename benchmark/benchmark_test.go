package benchmark

import (
	"io"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/radiohost/radlog/core"
	"github.com/radiohost/radlog/logger"
	"github.com/radiohost/radlog/registry"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (no-op / io.Discard)
// ---------------------------------------------------------------------------

// newRegistry returns a registry with one no-op backend admitting level
// and above.
func newRegistry(level core.Level) *registry.Registry {
	r := registry.New()
	r.SetGlobalLevel(level)
	r.AddBackend("noop", newNoopSink())
	return r
}

// newZapLogger returns a zap.Logger that writes JSON to io.Discard.
func newZapLogger(level zapcore.Level) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	c := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), level)
	return zap.New(c)
}

// ---------------------------------------------------------------------------
// Scenario 1 – accepted message, plain text
// ---------------------------------------------------------------------------

func BenchmarkEnabled(b *testing.B) {
	b.Run("radlog", func(b *testing.B) {
		logger.SetRegistry(newRegistry(core.TraceLevel))
		defer logger.SetRegistry(nil)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			logger.Info("BENCH").Append("info message").End()
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(zap.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – filtered-out call site with an argument to render
// ---------------------------------------------------------------------------

func BenchmarkDisabled(b *testing.B) {
	b.Run("radlog", func(b *testing.B) {
		logger.SetRegistry(newRegistry(core.ErrorLevel))
		defer logger.SetRegistry(nil)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			logger.Debug("BENCH").Append("value ", i).End()
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(zap.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("value", zap.Int("i", i))
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – formatted message
// ---------------------------------------------------------------------------

func BenchmarkFormatted(b *testing.B) {
	b.Run("radlog", func(b *testing.B) {
		logger.SetRegistry(newRegistry(core.TraceLevel))
		defer logger.SetRegistry(nil)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			logger.Infof("BENCH", "iteration %d of %d", i, b.N)
		}
	})

	b.Run("zap-sugar", func(b *testing.B) {
		l := newZapLogger(zap.DebugLevel).Sugar()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("iteration %d of %d", i, b.N)
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 4 – fan-out to several backends
// ---------------------------------------------------------------------------

func BenchmarkFanOut(b *testing.B) {
	r := registry.New()
	r.SetGlobalLevel(core.TraceLevel)
	r.AddBackend("first", newNoopSink())
	r.AddBackend("second", newNoopSink())
	r.AddBackend("third", newNoopSink())
	logger.SetRegistry(r)
	defer logger.SetRegistry(nil)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Warning("BENCH").Append("fan-out message").End()
	}
}

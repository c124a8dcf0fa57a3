// internal/capture/capture.go
package capture

import (
	"context"
	"time"
)

// Buffer is one block of mono samples in [-1, 1] as delivered by a source.
type Buffer struct {
	At      time.Time
	Samples []float32
}

// Source produces audio buffers until the context ends or the input runs dry.
// Run returns nil when the input is exhausted and ctx.Err() on cancellation.
type Source interface {
	SampleRate() float64
	Run(ctx context.Context, out chan<- Buffer) error
	Close() error
}

// backend is what the concrete inputs implement.
// emit may block; it returns an error once the consumer is gone.
type backend interface {
	SampleRate() float64
	Run(ctx context.Context, emit func(samples []float32) error) error
	Close() error
}

// source adapts a backend to Source.
type source struct {
	b   backend
	now func() time.Time
}

func newSource(b backend) *source {
	return &source{b: b, now: time.Now}
}

func (s *source) SampleRate() float64 { return s.b.SampleRate() }

func (s *source) Close() error { return s.b.Close() }

// Run stamps every buffer and hands it to out.
// One goroutine per source. No reordering.
func (s *source) Run(ctx context.Context, out chan<- Buffer) error {
	return s.b.Run(ctx, func(samples []float32) error {
		select {
		case out <- Buffer{At: s.now(), Samples: samples}:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}

// internal/timer/timer.go
//
// Package timer owns the decode state for one timer: the decoder, the display
// history and the capturing gate. A Timer is driven by exactly one goroutine;
// ProcessBuffer runs to completion before the next buffer is handed in.
package timer

import (
	"github.com/tamzrod/stackmat-replicator/internal/decoder"
	"github.com/tamzrod/stackmat-replicator/internal/phase"
)

// Outcome is everything one buffer produced.
// Hosts dispatch it however they like; nothing is called back.
type Outcome struct {
	// Paused is set when the gate was closed and the buffer was skipped.
	Paused bool

	Result decoder.Result

	// Events are the phase predicates that hold after the push, in phase.Order.
	// Empty on any miss, and on quiet cycles.
	Events []phase.Phase
}

// Received reports whether a display value was decoded ("value received").
func (o Outcome) Received() bool {
	return !o.Paused && o.Result.OK()
}

// Value is the received display value; only meaningful if Received.
func (o Outcome) Value() decoder.DisplayValue {
	return o.Result.Value
}

// Timer is the single-writer decode state.
type Timer struct {
	dec       *decoder.Decoder
	history   phase.History
	capturing bool
}

// New builds a capturing timer with a zeroed history.
// The sample rate is validated here; see decoder.ErrInvalidSampleRate.
func New(sampleRate float64) (*Timer, error) {
	dec, err := decoder.New(sampleRate)
	if err != nil {
		return nil, err
	}
	return &Timer{
		dec:       dec,
		history:   phase.NewHistory(),
		capturing: true,
	}, nil
}

// Start opens the gate. The history is kept across pauses.
func (t *Timer) Start() { t.capturing = true }

// Stop closes the gate; buffers are dropped, not queued.
func (t *Timer) Stop() { t.capturing = false }

// Capturing reports the gate state.
func (t *Timer) Capturing() bool { return t.capturing }

// History returns a copy of the display history, newest first.
func (t *Timer) History() phase.History { return t.history }

// ProcessBuffer decodes one buffer and updates the history on success.
// A miss leaves the history untouched and produces no events.
func (t *Timer) ProcessBuffer(samples []float32) Outcome {
	if !t.capturing {
		return Outcome{Paused: true}
	}

	res := t.dec.Decode(samples)
	if !res.OK() {
		return Outcome{Result: res}
	}

	t.history.Push(res.Value)

	return Outcome{
		Result: res,
		Events: t.history.Phases(),
	}
}

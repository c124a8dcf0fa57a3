// internal/decoder/decoder.go
package decoder

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSampleRate is returned when the sample rate cannot give a positive
// number of samples per bit period.
var ErrInvalidSampleRate = errors.New("decoder: sample rate must be a finite value > 0")

// idleBits is how many bit periods of continuous Mark precede a frame.
const idleBits = 9

// Status is the outcome of one decode attempt.
// Everything except StatusOK is a soft miss: no value, no error.
type Status uint8

const (
	StatusOK Status = iota
	// StatusNoSync: no idle-then-start transition in the buffer.
	StatusNoSync
	// StatusTruncated: synchronized, but the frame runs past the buffer end.
	StatusTruncated
	// StatusNoDigitMatch: a packet was read but holds no display window.
	StatusNoDigitMatch
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoSync:
		return "no_sync"
	case StatusTruncated:
		return "truncated"
	case StatusNoDigitMatch:
		return "no_digit_match"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Result is what one buffer produced.
// Packet is set from StatusNoDigitMatch onwards; Value only on StatusOK.
type Result struct {
	Status Status
	Packet Packet
	Value  DisplayValue
}

// OK reports whether a display value was recovered.
func (r Result) OK() bool { return r.Status == StatusOK }

// Decoder recovers display values from amplitude buffers.
// It is immutable after New and safe to share.
type Decoder struct {
	ticksPerBit float64
}

// New creates a decoder for a fixed sample rate.
// A bad rate fails here, once, instead of on every buffer.
func New(sampleRate float64) (*Decoder, error) {
	if math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) || sampleRate <= 0 {
		return nil, fmt.Errorf("%w (got %v)", ErrInvalidSampleRate, sampleRate)
	}
	return &Decoder{ticksPerBit: sampleRate / BaudRate}, nil
}

// TicksPerBit is the number of samples in one bit period.
func (d *Decoder) TicksPerBit() float64 {
	return d.ticksPerBit
}

// FindFrameStart returns the index of the first Space after more than
// idleBits periods of continuous Mark.
func (d *Decoder) FindFrameStart(bits []Bit) (int, bool) {
	threshold := idleBits * d.ticksPerBit

	marks := 0
	waiting := false
	for i, b := range bits {
		if b == Mark {
			marks++
			if float64(marks) > threshold {
				waiting = true
			}
			continue
		}

		if waiting {
			return i, true
		}
		marks = 0
	}
	return 0, false
}

// Decode runs the whole pipeline on one buffer.
// Any miss short-circuits the rest of the pipeline.
func (d *Decoder) Decode(samples []float32) Result {
	bits := SampleBits(samples)

	start, ok := d.FindFrameStart(bits)
	if !ok {
		return Result{Status: StatusNoSync}
	}

	recovered := Expand(Compress(bits[start:]), d.ticksPerBit)

	// The first recovered bit is the start bit found by FindFrameStart.
	if len(recovered) > 0 {
		recovered = recovered[1:]
	}

	packet, ok := ExtractPacket(recovered)
	if !ok {
		return Result{Status: StatusTruncated}
	}

	value, ok := FindDisplay(packet)
	if !ok {
		return Result{Status: StatusNoDigitMatch, Packet: packet}
	}

	return Result{Status: StatusOK, Packet: packet, Value: value}
}

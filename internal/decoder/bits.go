// internal/decoder/bits.go
package decoder

// Bit is one line state of the serial stream.
type Bit uint8

const (
	// Space is logical 0 (positive amplitude).
	Space Bit = 0
	// Mark is logical 1 (negative amplitude). The line idles at Mark.
	Mark Bit = 1
)

// SampleBit maps one amplitude sample to a line state.
// Negative is Mark, positive is Space.
// An exact zero has no defined state on the wire; it is read as Space.
func SampleBit(sample float32) Bit {
	if sample < 0 {
		return Mark
	}
	return Space
}

// SampleBits maps a whole buffer, one bit per sample.
func SampleBits(samples []float32) []Bit {
	out := make([]Bit, len(samples))
	for i, s := range samples {
		out[i] = SampleBit(s)
	}
	return out
}

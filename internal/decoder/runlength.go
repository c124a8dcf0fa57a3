// internal/decoder/runlength.go
package decoder

import "math"

// Run is a maximal span of identical bits, measured in samples.
type Run struct {
	Bit    Bit
	Length int
}

// Compress collapses a bit sequence into runs.
// Empty input yields no runs.
func Compress(bits []Bit) []Run {
	var runs []Run
	for i, b := range bits {
		if i == 0 || runs[len(runs)-1].Bit != b {
			runs = append(runs, Run{Bit: b, Length: 1})
			continue
		}
		runs[len(runs)-1].Length++
	}
	return runs
}

// Expand converts runs back to one bit per bit period.
//
// Each run is rounded to the nearest whole number of periods on its own.
// Rounding error is not carried between runs and there is no resync
// inside a frame; the source hardware has no shared clock to resync against.
func Expand(runs []Run, ticksPerBit float64) []Bit {
	var out []Bit
	for _, r := range runs {
		n := int(math.Round(float64(r.Length) / ticksPerBit))
		for i := 0; i < n; i++ {
			out = append(out, r.Bit)
		}
	}
	return out
}

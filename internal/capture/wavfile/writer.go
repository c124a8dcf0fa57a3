// internal/capture/wavfile/writer.go
package wavfile

import (
	"fmt"
	"io"
	"math"

	"github.com/youpy/go-wav"
)

// Write stores mono samples in [-1, 1] as a 16-bit PCM WAV.
// Out-of-range samples are clipped.
func Write(w io.Writer, sampleRate uint32, samples []float32) error {
	ww := wav.NewWriter(w, uint32(len(samples)), 1, sampleRate, 16)

	out := make([]wav.Sample, len(samples))
	for i, s := range samples {
		v := math.Round(float64(s) * math.MaxInt16)
		v = math.Max(math.MinInt16, math.Min(math.MaxInt16, v))
		out[i].Values[0] = int(v)
	}

	if err := ww.WriteSamples(out); err != nil {
		return fmt.Errorf("wavfile: write: %w", err)
	}
	return nil
}

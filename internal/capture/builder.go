// internal/capture/builder.go
package capture

import (
	"fmt"

	"github.com/tamzrod/stackmat-replicator/internal/capture/portaudio"
	"github.com/tamzrod/stackmat-replicator/internal/capture/wavfile"
	cfg "github.com/tamzrod/stackmat-replicator/internal/config"
)

// Build opens the configured audio source.
// Assumes config has already passed Validate and Normalize.
// Opening fails fast: a missing device or unreadable file is a startup error.
func Build(c cfg.SourceConfig) (Source, error) {
	switch c.Kind {
	case cfg.SourcePortAudio:
		s, err := portaudio.Open(portaudio.Config{
			Device:          c.Device,
			SampleRate:      c.SampleRate,
			FramesPerBuffer: c.FramesPerBuffer,
		})
		if err != nil {
			return nil, err
		}
		return newSource(s), nil

	case cfg.SourceWAV:
		r, err := wavfile.Open(wavfile.Config{
			Path:            c.Path,
			FramesPerBuffer: c.FramesPerBuffer,
			Realtime:        c.Realtime,
		})
		if err != nil {
			return nil, err
		}
		return newSource(r), nil

	default:
		return nil, fmt.Errorf("capture: unknown source kind %q", c.Kind)
	}
}

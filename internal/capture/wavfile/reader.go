// internal/capture/wavfile/reader.go
//
// Package wavfile replays recorded timer audio from PCM WAV files and writes
// synthetic recordings back out.
package wavfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/youpy/go-wav"
)

// Config describes one recording to replay.
type Config struct {
	Path            string
	FramesPerBuffer int
	Realtime        bool // pace buffers at the file's sample rate
}

// Reader replays the first channel of a PCM WAV file as normalised buffers.
type Reader struct {
	f      *os.File
	r      *wav.Reader
	format *wav.WavFormat

	frames   int
	realtime bool
}

// Open checks the header and prepares the file for Run.
// Only 8-bit (unsigned) and 16-bit (signed) PCM is accepted.
func Open(cfg Config) (*Reader, error) {
	if cfg.Path == "" {
		return nil, errors.New("wavfile: path required")
	}
	if cfg.FramesPerBuffer <= 0 {
		return nil, fmt.Errorf("wavfile: frames per buffer must be > 0, got %d", cfg.FramesPerBuffer)
	}

	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("wavfile: %w", err)
	}

	r := wav.NewReader(f)
	format, err := r.Format()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("wavfile: %s: format: %w", cfg.Path, err)
	}
	if err := checkFormat(format); err != nil {
		f.Close()
		return nil, fmt.Errorf("wavfile: %s: %w", cfg.Path, err)
	}

	return &Reader{
		f:        f,
		r:        r,
		format:   format,
		frames:   cfg.FramesPerBuffer,
		realtime: cfg.Realtime,
	}, nil
}

func checkFormat(format *wav.WavFormat) error {
	if format.AudioFormat != wav.AudioFormatPCM {
		return fmt.Errorf("audio format %d is not PCM", format.AudioFormat)
	}
	if format.BitsPerSample != 8 && format.BitsPerSample != 16 {
		return fmt.Errorf("%d bits per sample not supported (8 or 16)", format.BitsPerSample)
	}
	if format.NumChannels == 0 {
		return errors.New("no channels")
	}
	if format.SampleRate == 0 {
		return errors.New("sample rate is zero")
	}
	return nil
}

// SampleRate is taken from the file header.
func (r *Reader) SampleRate() float64 { return float64(r.format.SampleRate) }

func (r *Reader) Close() error { return r.f.Close() }

// Run emits one buffer per FramesPerBuffer samples. The last buffer may be
// short. Returns nil at end of file.
func (r *Reader) Run(ctx context.Context, emit func(samples []float32) error) error {
	interval := time.Duration(float64(r.frames) / r.SampleRate() * float64(time.Second))

	var tick *time.Ticker
	if r.realtime {
		tick = time.NewTicker(interval)
		defer tick.Stop()
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		samples, err := r.r.ReadSamples(uint32(r.frames))
		if len(samples) > 0 {
			if tick != nil {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-tick.C:
				}
			}
			if err := emit(r.normalize(samples)); err != nil {
				return err
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("wavfile: read: %w", err)
		}
	}
}

// normalize maps the first channel into [-1, 1).
// 8-bit WAV is unsigned with 128 as the centre line.
func (r *Reader) normalize(samples []wav.Sample) []float32 {
	out := make([]float32, len(samples))
	full := float32(int(1) << (r.format.BitsPerSample - 1))

	for i, s := range samples {
		v := r.r.IntValue(s, 0)
		if r.format.BitsPerSample == 8 {
			v -= 128
		}
		out[i] = float32(v) / full
	}
	return out
}

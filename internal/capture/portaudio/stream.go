// internal/capture/portaudio/stream.go
//
// Package portaudio captures live timer audio from a sound card input.
package portaudio

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gordonklaus/portaudio"
)

// queueDepth is how many buffers may wait between the audio callback and Run.
const queueDepth = 8

// Config selects the input device and stream geometry.
type Config struct {
	Device          string // device name; empty selects the default input
	SampleRate      float64
	FramesPerBuffer int
}

// Stream is one mono float32 input stream.
// The PortAudio callback never blocks: when Run falls behind, buffers are
// dropped and counted.
type Stream struct {
	stream *portaudio.Stream
	rate   float64

	queue   chan []float32
	dropped atomic.Uint64
}

// Open initialises PortAudio and opens (but does not start) the input stream.
func Open(cfg Config) (*Stream, error) {
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("portaudio: sample rate must be > 0, got %v", cfg.SampleRate)
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio: initialize: %w", err)
	}

	dev, err := inputDevice(cfg.Device)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, err
	}

	s := &Stream{
		rate:  cfg.SampleRate,
		queue: make(chan []float32, queueDepth),
	}

	params := portaudio.LowLatencyParameters(dev, nil)
	params.Input.Channels = 1
	params.SampleRate = cfg.SampleRate
	params.FramesPerBuffer = cfg.FramesPerBuffer

	stream, err := portaudio.OpenStream(params, s.process)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("portaudio: open %q: %w", dev.Name, err)
	}
	s.stream = stream

	return s, nil
}

func inputDevice(name string) (*portaudio.DeviceInfo, error) {
	if name == "" {
		dev, err := portaudio.DefaultInputDevice()
		if err != nil {
			return nil, fmt.Errorf("portaudio: default input: %w", err)
		}
		return dev, nil
	}

	devs, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("portaudio: list devices: %w", err)
	}
	return matchDevice(devs, name)
}

// matchDevice picks the first input-capable device with exactly this name.
func matchDevice(devs []*portaudio.DeviceInfo, name string) (*portaudio.DeviceInfo, error) {
	for _, d := range devs {
		if d.Name == name && d.MaxInputChannels > 0 {
			return d, nil
		}
	}
	return nil, fmt.Errorf("portaudio: no input device named %q", name)
}

// process runs on the PortAudio thread. in is reused after return.
func (s *Stream) process(in []float32) {
	buf := make([]float32, len(in))
	copy(buf, in)

	select {
	case s.queue <- buf:
	default:
		s.dropped.Add(1)
	}
}

func (s *Stream) SampleRate() float64 { return s.rate }

// Dropped is the number of buffers lost because the consumer was behind.
func (s *Stream) Dropped() uint64 { return s.dropped.Load() }

// Run starts the stream and emits buffers until ctx ends.
func (s *Stream) Run(ctx context.Context, emit func(samples []float32) error) error {
	if err := s.stream.Start(); err != nil {
		return fmt.Errorf("portaudio: start: %w", err)
	}

	err := s.drain(ctx, emit)

	if stopErr := s.stream.Stop(); stopErr != nil {
		err = errors.Join(err, fmt.Errorf("portaudio: stop: %w", stopErr))
	}
	return err
}

func (s *Stream) drain(ctx context.Context, emit func(samples []float32) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case buf := <-s.queue:
			if err := emit(buf); err != nil {
				return err
			}
		}
	}
}

// Close releases the stream and PortAudio itself.
func (s *Stream) Close() error {
	err := s.stream.Close()
	if termErr := portaudio.Terminate(); termErr != nil && err == nil {
		err = termErr
	}
	return err
}

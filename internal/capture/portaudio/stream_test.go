// internal/capture/portaudio/stream_test.go
package portaudio

import (
	"context"
	"testing"

	"github.com/gordonklaus/portaudio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchDevice(t *testing.T) {
	devs := []*portaudio.DeviceInfo{
		{Name: "USB Audio", MaxInputChannels: 0, MaxOutputChannels: 2},
		{Name: "USB Audio", MaxInputChannels: 1},
		{Name: "Built-in Microphone", MaxInputChannels: 2},
	}

	d, err := matchDevice(devs, "USB Audio")
	require.NoError(t, err)
	assert.Same(t, devs[1], d, "output-only device with the same name is skipped")

	_, err = matchDevice(devs, "usb audio")
	assert.Error(t, err, "names match exactly")
}

func TestProcessCopiesAndDrops(t *testing.T) {
	s := &Stream{queue: make(chan []float32, 1)}

	in := []float32{0.1, -0.2}
	s.process(in)
	in[0] = 9 // PortAudio reuses its buffer

	s.process(in) // queue full

	assert.Equal(t, uint64(1), s.Dropped())
	assert.Equal(t, []float32{0.1, -0.2}, <-s.queue)
}

func TestDrainStopsOnCancel(t *testing.T) {
	s := &Stream{queue: make(chan []float32, 2)}
	s.queue <- []float32{1}

	ctx, cancel := context.WithCancel(context.Background())

	var got [][]float32
	err := s.drain(ctx, func(samples []float32) error {
		got = append(got, samples)
		cancel()
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, [][]float32{{1}}, got)
}

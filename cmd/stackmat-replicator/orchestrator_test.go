// cmd/stackmat-replicator/orchestrator_test.go
package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/stackmat-replicator/internal/capture"
	"github.com/tamzrod/stackmat-replicator/internal/decoder"
	"github.com/tamzrod/stackmat-replicator/internal/status"
	"github.com/tamzrod/stackmat-replicator/internal/synth"
	"github.com/tamzrod/stackmat-replicator/internal/timer"
)

const rate = 48000

type recordingWriter struct {
	snaps []status.Snapshot
}

func (w *recordingWriter) Write(s status.Snapshot) error {
	w.snaps = append(w.snaps, s)
	return nil
}

func newTestOrchestrator(t *testing.T) (*orchestrator, *recordingWriter) {
	t.Helper()
	tm, err := timer.New(rate)
	require.NoError(t, err)

	w := &recordingWriter{}
	return &orchestrator{
		timer:  tm,
		writer: w,
		log:    log.New(io.Discard),
		snap:   status.Initial(),
	}, w
}

func frame(value string) capture.Buffer {
	return capture.Buffer{
		Samples: synth.Signal(rate, 0.5, synth.StatusRunning, decoder.MustDisplayValue(value)),
	}
}

func TestOrchestratorPublishesPhases(t *testing.T) {
	o, w := newTestOrchestrator(t)

	o.handle(frame("000000"))
	o.handle(frame("000120"))
	o.handle(frame("000240"))

	require.Len(t, w.snaps, 3)
	assert.Equal(t, status.PhaseZero, w.snaps[0].Phase)
	assert.Equal(t, status.PhaseStarting, w.snaps[1].Phase)
	assert.Equal(t, status.PhaseRunning, w.snaps[2].Phase)
	assert.Equal(t, uint16(3), w.snaps[2].Readings)
	assert.Equal(t, decoder.MustDisplayValue("000240"), w.snaps[2].Display)
}

func TestOrchestratorIgnoresMisses(t *testing.T) {
	o, w := newTestOrchestrator(t)

	o.handle(capture.Buffer{Samples: make([]float32, 4096)})

	assert.Empty(t, w.snaps)
	assert.Equal(t, status.Initial(), o.snap)
}

func TestOrchestratorToggle(t *testing.T) {
	o, w := newTestOrchestrator(t)

	o.toggle()
	require.Len(t, w.snaps, 1)
	assert.False(t, w.snaps[0].Capturing)

	// paused: buffers are dropped
	o.handle(frame("000120"))
	assert.Len(t, w.snaps, 1)

	o.toggle()
	require.Len(t, w.snaps, 2)
	assert.True(t, w.snaps[1].Capturing)
}

// internal/timer/timer_test.go
package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/stackmat-replicator/internal/decoder"
	"github.com/tamzrod/stackmat-replicator/internal/phase"
	"github.com/tamzrod/stackmat-replicator/internal/synth"
)

const rate = 44100

func frame(s string) []float32 {
	return synth.Signal(rate, 0.6, synth.StatusRunning, decoder.MustDisplayValue(s))
}

func TestNew_FailsFastOnBadRate(t *testing.T) {
	_, err := New(0)
	require.ErrorIs(t, err, decoder.ErrInvalidSampleRate)
}

func TestProcessBuffer_Lifecycle(t *testing.T) {
	tm, err := New(rate)
	require.NoError(t, err)
	assert.Equal(t, phase.Zero, tm.History().Current())

	steps := []struct {
		value string
		want  []phase.Phase
	}{
		{"013045", []phase.Phase{phase.Starting}},
		{"013050", []phase.Phase{phase.Running}},
		{"013050", nil},
		{"013050", []phase.Phase{phase.Stopped}},
		{"000000", []phase.Phase{phase.Reset}},
	}

	for _, st := range steps {
		out := tm.ProcessBuffer(frame(st.value))
		require.True(t, out.Received(), "value %s: status %s", st.value, out.Result.Status)
		assert.Equal(t, st.value, out.Value().String())
		assert.Equal(t, st.want, out.Events, "value %s", st.value)
	}
}

func TestProcessBuffer_MissLeavesHistory(t *testing.T) {
	tm, err := New(rate)
	require.NoError(t, err)

	tm.ProcessBuffer(frame("013045"))
	before := tm.History()

	out := tm.ProcessBuffer(make([]float32, 4096))
	assert.False(t, out.Received())
	assert.Equal(t, decoder.StatusNoSync, out.Result.Status)
	assert.Empty(t, out.Events)
	assert.Equal(t, before, tm.History())

	// truncated frame
	bits := synth.Bits(synth.Frame(synth.StatusRunning, decoder.MustDisplayValue("999999")), synth.DefaultIdleBits, 0)
	out = tm.ProcessBuffer(synth.Modulate(bits[:synth.DefaultIdleBits+40], rate, 0.6))
	assert.Equal(t, decoder.StatusTruncated, out.Result.Status)
	assert.Empty(t, out.Events)
	assert.Equal(t, before, tm.History())
}

func TestProcessBuffer_GateSkipsAndResumes(t *testing.T) {
	tm, err := New(rate)
	require.NoError(t, err)
	assert.True(t, tm.Capturing())

	tm.ProcessBuffer(frame("013045"))

	tm.Stop()
	assert.False(t, tm.Capturing())

	out := tm.ProcessBuffer(frame("013050"))
	assert.True(t, out.Paused)
	assert.False(t, out.Received())
	assert.Empty(t, out.Events)
	assert.Equal(t, "013045", tm.History()[0].String())

	// resuming continues from the history kept while paused
	tm.Start()
	out = tm.ProcessBuffer(frame("013050"))
	require.True(t, out.Received())
	assert.Equal(t, []phase.Phase{phase.Running}, out.Events)
}

// internal/status/snapshot.go
package status

import (
	"github.com/tamzrod/stackmat-replicator/internal/decoder"
	"github.com/tamzrod/stackmat-replicator/internal/phase"
	"github.com/tamzrod/stackmat-replicator/internal/timer"
)

// Snapshot represents exactly what the writer is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Phase     uint16
	Capturing bool
	Readings  uint16
	Display   decoder.DisplayValue
}

// Initial is the snapshot before any buffer has been processed.
func Initial() Snapshot {
	return Snapshot{
		Phase:     PhaseNone,
		Capturing: true,
		Display:   decoder.Zero,
	}
}

// PhaseCode maps an inferred phase to its register code.
func PhaseCode(p phase.Phase) uint16 {
	switch p {
	case phase.Zero:
		return PhaseZero
	case phase.Reset:
		return PhaseReset
	case phase.Starting:
		return PhaseStarting
	case phase.Running:
		return PhaseRunning
	case phase.Stopped:
		return PhaseStopped
	default:
		return PhaseNone
	}
}

// Apply folds one timer outcome into the snapshot.
// The phase is sticky: a quiet cycle keeps the last reported phase.
// Returns true if anything changed.
func (s *Snapshot) Apply(o timer.Outcome) bool {
	if o.Paused || !o.Received() {
		return false
	}

	s.Readings++
	s.Display = o.Value()
	for _, p := range o.Events {
		s.Phase = PhaseCode(p)
	}
	return true
}

// SetCapturing records the gate state. Returns true if it changed.
func (s *Snapshot) SetCapturing(on bool) bool {
	if s.Capturing == on {
		return false
	}
	s.Capturing = on
	return true
}

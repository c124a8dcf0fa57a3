// internal/phase/phase.go
//
// Package phase infers what the timer is doing from its last three display values.
// There is no stored phase: it is recomputed from the history after every push.
package phase

import (
	"fmt"

	"github.com/tamzrod/stackmat-replicator/internal/decoder"
)

// Phase is the inferred operating mode of the timer.
type Phase uint8

const (
	// None is not a phase the timer reports; it marks a cycle where no
	// predicate holds.
	None Phase = iota
	Zero
	Reset
	Starting
	Running
	Stopped
)

// Order is the fixed order in which predicates are checked and events fired.
var Order = [...]Phase{Zero, Reset, Starting, Running, Stopped}

func (p Phase) String() string {
	switch p {
	case None:
		return "none"
	case Zero:
		return "zero"
	case Reset:
		return "reset"
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// HistoryLen is the number of display values kept.
const HistoryLen = 3

// History holds the last display values, newest first.
// The zero value is not valid; use NewHistory.
type History [HistoryLen]decoder.DisplayValue

// NewHistory returns a history of three zero displays.
func NewHistory() History {
	return History{decoder.Zero, decoder.Zero, decoder.Zero}
}

// Push records a new value and drops the oldest.
func (h *History) Push(v decoder.DisplayValue) {
	h[2] = h[1]
	h[1] = h[0]
	h[0] = v
}

// ---- predicates ----

func (h History) IsZero() bool {
	return h[0].IsZero() && h[1].IsZero() && h[2].IsZero()
}

func (h History) IsReset() bool {
	return h[0].IsZero() && !h[1].IsZero()
}

func (h History) IsStarting() bool {
	return !h[0].IsZero() && h[1].IsZero()
}

func (h History) IsRunning() bool {
	return !h[0].IsZero() && !h[1].IsZero() && h[0] != h[1]
}

func (h History) IsStopped() bool {
	return h[0] == h[1] && h[1] == h[2] && !h[0].IsZero()
}

// Holds reports whether the predicate for p is true.
func (h History) Holds(p Phase) bool {
	switch p {
	case Zero:
		return h.IsZero()
	case Reset:
		return h.IsReset()
	case Starting:
		return h.IsStarting()
	case Running:
		return h.IsRunning()
	case Stopped:
		return h.IsStopped()
	default:
		return false
	}
}

// Phases evaluates every predicate independently, in Order.
//
// The predicates are not exclusive by construction of the type, but for any
// history built by Push at most one holds. An empty result is a quiet cycle,
// e.g. the first repeat of a value after Running.
func (h History) Phases() []Phase {
	var out []Phase
	for _, p := range Order {
		if h.Holds(p) {
			out = append(out, p)
		}
	}
	return out
}

// Current returns the single phase that holds, or None.
func (h History) Current() Phase {
	for _, p := range Order {
		if h.Holds(p) {
			return p
		}
	}
	return None
}

// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/stackmat-replicator/internal/status"
)

// StatusWriter is the delivery-only contract for one target.
// It receives a snapshot and writes it verbatim.
// No logic, no interpretation.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// targetStatusWriter writes the timer status block into one target.
type targetStatusWriter struct {
	target Target
	cli    endpointClient

	needFull bool
	last     []uint16 // block as last confirmed on the target
	nameRegs []uint16
}

const statusAreaHoldingRegisters byte = 3

// NewTargetStatusWriter builds the status writer for one target.
func NewTargetStatusWriter(t Target, deviceName string, cli endpointClient) *targetStatusWriter {
	return &targetStatusWriter{
		target:   t,
		cli:      cli,
		needFull: true, // full re-assert on first successful write
		nameRegs: status.EncodeDeviceName(deviceName),
	}
}

// WriteStatus delivers a snapshot into status memory.
// On any write failure, the next call re-asserts the full block.
func (sw *targetStatusWriter) WriteStatus(s status.Snapshot) error {
	if sw == nil {
		return errors.New("status writer: disabled")
	}
	if sw.cli == nil {
		return fmt.Errorf("status writer: missing client for %s", sw.target.ClientKey())
	}

	baseAddr := sw.baseAddr()
	regs := status.EncodeFull(s, sw.nameRegs)

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if sw.needFull {
		if err := sw.cli.WriteRegisters(
			statusAreaHoldingRegisters,
			sw.target.UnitID,
			baseAddr,
			regs,
		); err != nil {
			sw.needFull = true
			return fmt.Errorf("status writer: full block write failed: %w", err)
		}

		sw.needFull = false
		sw.last = regs
		return nil
	}

	// ------------------------------------------------------------
	// Incremental: one write per run of changed slots
	// ------------------------------------------------------------
	var errs []string

	for _, r := range changedRuns(sw.last, regs) {
		if err := sw.cli.WriteRegisters(
			statusAreaHoldingRegisters,
			sw.target.UnitID,
			baseAddr+uint16(r.start),
			regs[r.start:r.end],
		); err != nil {
			errs = append(errs, fmt.Sprintf("slots %d-%d write failed: %v", r.start, r.end-1, err))
			continue
		}
		copy(sw.last[r.start:r.end], regs[r.start:r.end])
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt — re-assert on next call.
		sw.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	return nil
}

func (sw *targetStatusWriter) baseAddr() uint16 {
	// Each timer owns a fixed SlotsPerDevice block.
	return sw.target.BaseSlot * status.SlotsPerDevice
}

type slotRun struct {
	start, end int // [start, end)
}

// changedRuns returns maximal runs of slots that differ between two blocks.
func changedRuns(prev, next []uint16) []slotRun {
	var runs []slotRun
	for i := 0; i < len(next); i++ {
		if i < len(prev) && prev[i] == next[i] {
			continue
		}
		if n := len(runs); n > 0 && runs[n-1].end == i {
			runs[n-1].end = i + 1
			continue
		}
		runs = append(runs, slotRun{start: i, end: i + 1})
	}
	return runs
}

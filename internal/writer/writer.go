// internal/writer/writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/stackmat-replicator/internal/status"
)

// endpointClient is the exact contract the writer uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type endpointClient interface {
	WriteRegisters(area byte, unitID uint8, addr uint16, regs []uint16) error
}

type writerImpl struct {
	targets []*targetStatusWriter
}

// New builds one status writer per target.
// A target whose client is missing still gets a writer; it fails on Write.
func New(plan Plan, clients map[string]endpointClient) Writer {
	w := &writerImpl{}
	for _, t := range plan.Targets {
		w.targets = append(w.targets, NewTargetStatusWriter(t, plan.DeviceName, clients[t.ClientKey()]))
	}
	return w
}

// Write fans the snapshot out to every target.
// One failing target does not stop the others.
func (w *writerImpl) Write(s status.Snapshot) error {
	var errs []string

	for _, tw := range w.targets {
		if err := tw.WriteStatus(s); err != nil {
			errs = append(errs, fmt.Sprintf(
				"writer: %s unit=%d slot=%d: %v",
				tw.target.ClientKey(), tw.target.UnitID, tw.target.BaseSlot, err,
			))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, " | "))
	}

	return nil
}

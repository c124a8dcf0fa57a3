// internal/writer/types.go
package writer

import (
	"time"

	"github.com/tamzrod/stackmat-replicator/internal/status"
)

// Target is one status block destination.
type Target struct {
	Endpoint  string
	Transport string // config.TransportModbus | config.TransportIngest
	UnitID    uint8
	BaseSlot  uint16
	Timeout   time.Duration
}

// ClientKey identifies the shared connection a target writes through.
func (t Target) ClientKey() string {
	return t.Transport + "://" + t.Endpoint
}

// Plan is the fully-built write plan for one timer.
type Plan struct {
	DeviceName string
	Targets    []Target
}

// Writer delivers timer snapshots into every target.
type Writer interface {
	Write(s status.Snapshot) error
}

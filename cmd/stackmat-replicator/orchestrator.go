// cmd/stackmat-replicator/orchestrator.go
package main

import (
	"github.com/charmbracelet/log"

	"github.com/tamzrod/stackmat-replicator/internal/capture"
	"github.com/tamzrod/stackmat-replicator/internal/status"
	"github.com/tamzrod/stackmat-replicator/internal/timer"
	"github.com/tamzrod/stackmat-replicator/internal/writer"
)

// orchestrator is runner-owned state: the timer and the snapshot.
// Only the main loop touches it.
type orchestrator struct {
	timer  *timer.Timer
	writer writer.Writer
	log    *log.Logger

	snap status.Snapshot
}

// handle processes one buffer and delivers the snapshot if it changed.
func (o *orchestrator) handle(buf capture.Buffer) {
	res := o.timer.ProcessBuffer(buf.Samples)
	if res.Paused {
		return
	}

	if !res.Received() {
		o.log.Debug("no value", "status", res.Result.Status, "samples", len(buf.Samples))
		return
	}

	for _, p := range res.Events {
		o.log.Info("phase", "phase", p, "value", res.Value().Format())
	}
	o.log.Debug("value received", "value", res.Value().Format(), "packet", string(res.Result.Packet[:]))

	if o.snap.Apply(res) {
		o.publish("value")
	}
}

// toggle flips the capture gate.
func (o *orchestrator) toggle() {
	if o.timer.Capturing() {
		o.timer.Stop()
	} else {
		o.timer.Start()
	}
	o.log.Info("capture gate", "capturing", o.timer.Capturing())

	if o.snap.SetCapturing(o.timer.Capturing()) {
		o.publish("gate")
	}
}

func (o *orchestrator) publish(reason string) {
	if err := o.writer.Write(o.snap); err != nil {
		o.log.Error("status write failed", "reason", reason, "err", err)
	}
}

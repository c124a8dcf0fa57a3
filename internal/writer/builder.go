// internal/writer/builder.go
package writer

import (
	"fmt"
	"time"

	cfg "github.com/tamzrod/stackmat-replicator/internal/config"
	"github.com/tamzrod/stackmat-replicator/internal/writer/ingest"
	wmodbus "github.com/tamzrod/stackmat-replicator/internal/writer/modbus"
)

// BuildPlan converts the replicator config into a Writer Plan.
// Assumes config has already passed Validate and Normalize.
func BuildPlan(r cfg.ReplicatorConfig) Plan {
	plan := Plan{DeviceName: r.DeviceName}

	for _, t := range r.Targets {
		plan.Targets = append(plan.Targets, Target{
			Endpoint:  t.Endpoint,
			Transport: t.Transport,
			UnitID:    t.UnitID,
			BaseSlot:  t.BaseSlot,
			Timeout:   time.Duration(t.TimeoutMs) * time.Millisecond,
		})
	}

	return plan
}

// BuildEndpointClients creates one client per unique transport + endpoint.
// The first target seen for an endpoint decides its timeout.
func BuildEndpointClients(plan Plan) (map[string]endpointClient, func() error, error) {
	clients := make(map[string]endpointClient)
	var closers []func() error

	closeAll := func() error {
		var last error
		for _, fn := range closers {
			if err := fn(); err != nil {
				last = err
			}
		}
		return last
	}

	for _, t := range plan.Targets {
		key := t.ClientKey()
		if _, ok := clients[key]; ok {
			continue
		}

		var (
			c       endpointClient
			closeFn func() error
		)

		switch t.Transport {
		case cfg.TransportModbus:
			mc, err := wmodbus.NewEndpointClient(wmodbus.Config{
				Endpoint: t.Endpoint,
				Timeout:  t.Timeout,
			})
			if err != nil {
				_ = closeAll()
				return nil, nil, err
			}
			c, closeFn = mc, mc.Close

		case cfg.TransportIngest:
			ic, err := ingest.NewEndpointClient(ingest.Config{
				Endpoint: t.Endpoint,
				Timeout:  t.Timeout,
			})
			if err != nil {
				_ = closeAll()
				return nil, nil, err
			}
			c, closeFn = ic, ic.Close

		default:
			_ = closeAll()
			return nil, nil, fmt.Errorf("writer: unknown transport %q for %s", t.Transport, t.Endpoint)
		}

		clients[key] = c
		closers = append(closers, closeFn)
	}

	return clients, closeAll, nil
}

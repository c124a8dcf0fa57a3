// internal/writer/writer_test.go
package writer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/tamzrod/stackmat-replicator/internal/config"
	"github.com/tamzrod/stackmat-replicator/internal/decoder"
	"github.com/tamzrod/stackmat-replicator/internal/status"
)

// ---- fake endpoint client ----

type fakeEndpointClient struct {
	writes []writeCall
	fail   error
}

type writeCall struct {
	area   byte
	unitID uint8
	addr   uint16
	regs   []uint16
}

func (f *fakeEndpointClient) WriteRegisters(area byte, unitID uint8, addr uint16, regs []uint16) error {
	if f.fail != nil {
		return f.fail
	}
	f.writes = append(f.writes, writeCall{
		area:   area,
		unitID: unitID,
		addr:   addr,
		regs:   append([]uint16(nil), regs...),
	})
	return nil
}

func (f *fakeEndpointClient) last() writeCall {
	return f.writes[len(f.writes)-1]
}

// ---- tests ----

func TestBuildPlan(t *testing.T) {
	plan := BuildPlan(cfg.ReplicatorConfig{
		DeviceName: "BENCH",
		Targets: []cfg.TargetConfig{
			{Endpoint: "ep1", Transport: cfg.TransportModbus, UnitID: 2, BaseSlot: 3, TimeoutMs: 250},
		},
	})

	assert.Equal(t, "BENCH", plan.DeviceName)
	require.Len(t, plan.Targets, 1)
	assert.Equal(t, "modbus://ep1", plan.Targets[0].ClientKey())
	assert.Equal(t, uint16(3), plan.Targets[0].BaseSlot)
	assert.Equal(t, int64(250), plan.Targets[0].Timeout.Milliseconds())
}

func TestBuildEndpointClients_UnknownTransport(t *testing.T) {
	_, _, err := BuildEndpointClients(Plan{Targets: []Target{{Endpoint: "ep1", Transport: "mqtt"}}})
	assert.Error(t, err)
}

func TestWriter_FanOutWithBaseSlotMath(t *testing.T) {
	a := &fakeEndpointClient{}
	b := &fakeEndpointClient{}

	plan := Plan{
		DeviceName: "DEV-01",
		Targets: []Target{
			{Endpoint: "ep1", Transport: "modbus", UnitID: 1, BaseSlot: 0},
			{Endpoint: "ep2", Transport: "ingest", UnitID: 9, BaseSlot: 2},
		},
	}

	w := New(plan, map[string]endpointClient{
		"modbus://ep1": a,
		"ingest://ep2": b,
	})

	require.NoError(t, w.Write(status.Initial()))

	require.Len(t, a.writes, 1)
	assert.Equal(t, uint16(0), a.last().addr)
	assert.Equal(t, uint8(1), a.last().unitID)
	assert.Equal(t, statusAreaHoldingRegisters, a.last().area)

	require.Len(t, b.writes, 1)
	assert.Equal(t, uint16(2*status.SlotsPerDevice), b.last().addr)
	assert.Equal(t, uint8(9), b.last().unitID)
}

func TestWriter_MissingClientDoesNotBlockOthers(t *testing.T) {
	a := &fakeEndpointClient{}

	plan := Plan{
		Targets: []Target{
			{Endpoint: "gone", Transport: "modbus"},
			{Endpoint: "ep1", Transport: "modbus"},
		},
	}

	w := New(plan, map[string]endpointClient{"modbus://ep1": a})

	err := w.Write(status.Initial())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "modbus://gone")
	assert.Len(t, a.writes, 1)
}

func TestWriter_AggregatesErrors(t *testing.T) {
	bad := &fakeEndpointClient{fail: errors.New("boom")}

	plan := Plan{
		Targets: []Target{
			{Endpoint: "ep1", Transport: "modbus", BaseSlot: 0},
			{Endpoint: "ep1", Transport: "modbus", BaseSlot: 1},
		},
	}

	w := New(plan, map[string]endpointClient{"modbus://ep1": bad})

	err := w.Write(status.Initial())
	require.Error(t, err)
	assert.Contains(t, err.Error(), " | ")
}

func TestChangedRuns(t *testing.T) {
	prev := []uint16{0, 1, 2, 3, 4, 5}
	next := []uint16{0, 9, 9, 3, 4, 9}

	assert.Equal(t, []slotRun{{1, 3}, {5, 6}}, changedRuns(prev, next))
	assert.Empty(t, changedRuns(prev, prev))
	assert.Equal(t, []slotRun{{0, 6}}, changedRuns(nil, next))
}

func TestWriter_DisplayUpdateIsIncremental(t *testing.T) {
	fake := &fakeEndpointClient{}
	w := New(Plan{Targets: []Target{{Endpoint: "ep1", Transport: "modbus"}}}, map[string]endpointClient{
		"modbus://ep1": fake,
	})

	s := status.Initial()
	require.NoError(t, w.Write(s))

	s.Readings = 1
	s.Display = decoder.MustDisplayValue("000001")
	require.NoError(t, w.Write(s))

	require.Len(t, fake.writes, 4)

	// readings, elapsed lo, last display register: three separate runs
	assert.Equal(t, uint16(status.SlotReadings), fake.writes[1].addr)
	assert.Equal(t, []uint16{1}, fake.writes[1].regs)

	assert.Equal(t, uint16(status.SlotElapsedLo), fake.writes[2].addr)
	assert.Equal(t, []uint16{1}, fake.writes[2].regs)

	assert.Equal(t, uint16(status.SlotDisplayStart+2), fake.writes[3].addr)
	assert.Equal(t, []uint16{uint16('0')<<8 | uint16('1')}, fake.writes[3].regs)
}

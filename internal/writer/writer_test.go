// internal/writer/writer_test.go
package writer

import (
	"errors"
	"testing"
	"time"

	cfg "github.com/tamzrod/dynexposure/internal/config"
	"github.com/tamzrod/dynexposure/internal/exposure"
	"github.com/tamzrod/dynexposure/internal/meter"
	"github.com/tamzrod/dynexposure/internal/status"
)

// ---- fake endpoint client ----

type fakeEndpointClient struct {
	writes []writeCall
	fail   bool
}

type writeCall struct {
	area   byte
	unitID uint8
	addr   uint16
	regs   []uint16
}

func (f *fakeEndpointClient) WriteRegisters(area byte, unitID uint8, addr uint16, regs []uint16) error {
	if f.fail {
		return errors.New("endpoint down")
	}
	f.writes = append(f.writes, writeCall{area: area, unitID: unitID, addr: addr, regs: regs})
	return nil
}

func testSnapshot() status.Snapshot {
	g, _ := meter.Preset(meter.PresetFull)
	return status.Snapshot{
		Grid:           g,
		Decision:       exposure.Over,
		Score:          22,
		ExposureBefore: 100,
		ExposureAfter:  105,
	}
}

// ---- tests ----

func TestWriter_FullBlockAtPlanAddress(t *testing.T) {
	fake := &fakeEndpointClient{}

	plan := Plan{
		Endpoint:   "ep1",
		UnitID:     4,
		Address:    40,
		DeviceName: "CAM-01",
	}

	w := New(plan, fake)

	if err := w.Write(testSnapshot()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fake.writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(fake.writes))
	}

	wr := fake.writes[0]
	if wr.area != 3 || wr.unitID != 4 || wr.addr != 40 {
		t.Fatalf("unexpected target: area=%d unit=%d addr=%d", wr.area, wr.unitID, wr.addr)
	}
	if len(wr.regs) != status.SlotsPerBlock {
		t.Fatalf("expected %d regs, got %d", status.SlotsPerBlock, len(wr.regs))
	}
	if wr.regs[status.SlotDecision] != status.DecisionOver {
		t.Fatalf("decision slot: got=%d", wr.regs[status.SlotDecision])
	}
	if wr.regs[status.SlotDeviceNameStart] != uint16('C')<<8|uint16('A') {
		t.Fatalf("device name not encoded: 0x%04x", wr.regs[status.SlotDeviceNameStart])
	}
}

func TestWriter_PropagatesError(t *testing.T) {
	w := New(Plan{Endpoint: "ep1"}, &fakeEndpointClient{fail: true})

	if err := w.Write(testSnapshot()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestBuildPlan(t *testing.T) {
	if _, ok := BuildPlan(cfg.ReportConfig{}); ok {
		t.Fatalf("empty endpoint must disable reporting")
	}

	plan, ok := BuildPlan(cfg.ReportConfig{
		Endpoint:  "127.0.0.1:1502",
		Transport: cfg.TransportIngest,
		UnitID:    2,
		Address:   100,
		TimeoutMs: 250,
	})
	if !ok {
		t.Fatalf("expected reporting enabled")
	}
	if plan.Timeout != 250*time.Millisecond || plan.Address != 100 || plan.UnitID != 2 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
}

func TestBuild_UnknownTransport(t *testing.T) {
	if _, _, err := Build(Plan{Endpoint: "127.0.0.1:1", Transport: "mqtt"}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

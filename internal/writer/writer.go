// internal/writer/writer.go
package writer

import (
	"errors"
	"fmt"

	"github.com/tamzrod/dynexposure/internal/status"
)

// endpointClient is the exact contract the writer uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type endpointClient interface {
	WriteRegisters(area byte, unitID uint8, addr uint16, regs []uint16) error
}

// areaHoldingRegisters is the register memory the status block lives in.
const areaHoldingRegisters byte = 3

type snapshotWriter struct {
	plan Plan
	cli  endpointClient
}

func New(plan Plan, cli endpointClient) Writer {
	return &snapshotWriter{
		plan: plan,
		cli:  cli,
	}
}

// Write delivers the full status block in one request.
// Delivery only: no retries, no interpretation.
func (w *snapshotWriter) Write(s status.Snapshot) error {
	if w.cli == nil {
		return errors.New("writer: missing client")
	}

	regs := status.Encode(s, w.plan.DeviceName)

	if err := w.cli.WriteRegisters(
		areaHoldingRegisters,
		w.plan.UnitID,
		w.plan.Address,
		regs,
	); err != nil {
		return fmt.Errorf(
			"writer: ep=%s unit=%d addr=%d err=%w",
			w.plan.Endpoint, w.plan.UnitID, w.plan.Address, err,
		)
	}

	return nil
}

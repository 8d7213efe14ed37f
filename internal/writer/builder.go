// internal/writer/builder.go
package writer

import (
	"fmt"
	"time"

	cfg "github.com/tamzrod/dynexposure/internal/config"
	"github.com/tamzrod/dynexposure/internal/writer/ingest"
	wmodbus "github.com/tamzrod/dynexposure/internal/writer/modbus"
)

// BuildPlan converts the report config into a Plan.
// Returns false when reporting is disabled.
// Assumes config has already passed validation.
func BuildPlan(r cfg.ReportConfig) (Plan, bool) {
	if !r.Enabled() {
		return Plan{}, false
	}

	return Plan{
		Endpoint:   r.Endpoint,
		Transport:  r.Transport,
		UnitID:     r.UnitID,
		Address:    r.Address,
		DeviceName: r.DeviceName,
		Timeout:    time.Duration(r.TimeoutMs) * time.Millisecond,
		Verify:     r.Verify,
	}, true
}

// Build creates the writer and its endpoint client for a plan.
// The returned closer releases the connection.
func Build(plan Plan) (Writer, func() error, error) {
	switch plan.Transport {
	case cfg.TransportModbus:
		c, err := wmodbus.NewEndpointClient(wmodbus.Config{
			Endpoint: plan.Endpoint,
			Timeout:  plan.Timeout,
			Verify:   plan.Verify,
		})
		if err != nil {
			return nil, nil, err
		}
		return New(plan, c), c.Close, nil

	case cfg.TransportIngest:
		c, err := ingest.NewEndpointClient(ingest.Config{
			Endpoint: plan.Endpoint,
			Timeout:  plan.Timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return New(plan, c), c.Close, nil

	default:
		return nil, nil, fmt.Errorf("writer: unsupported transport %q", plan.Transport)
	}
}

// internal/cycle/builder.go
package cycle

import (
	"log"

	cfg "github.com/tamzrod/dynexposure/internal/config"
	"github.com/tamzrod/dynexposure/internal/exposure"
	"github.com/tamzrod/dynexposure/internal/meter"
	"github.com/tamzrod/dynexposure/internal/uvc"
)

// Device is the camera collaborator one cycle drives.
type Device interface {
	meter.XU
	exposure.Controls
	QueryControl(id uint32) (uvc.ControlRange, error)
	MapControls(maps []uvc.Mapping) error
}

// Build wires a runner from config.
// Assumes config has already passed validation.
func Build(c *cfg.Config, dev Device, dryRun bool) (*Runner, error) {
	if c.XU.MapControls {
		entity, err := c.XU.Entity()
		if err != nil {
			return nil, err
		}
		if err := dev.MapControls(Mappings(entity, c.XU)); err != nil {
			return nil, err
		}
	}

	session, err := meter.Build(c, dev)
	if err != nil {
		return nil, err
	}

	opts := Options{DryRun: dryRun}
	if c.Classifier.Strict {
		opts.Mode = exposure.Strict
	}

	if dryRun {
		return New(c.Device, session, nil, opts)
	}

	act, err := exposure.NewActuator(dev, policy(c.Exposure, dev))
	if err != nil {
		return nil, err
	}

	return New(c.Device, session, act, opts)
}

// Mappings describes the two metering selectors as V4L2 controls
// ("point" selects a field, "point_ret" reads its result).
func Mappings(entity [16]byte, x cfg.XUConfig) []uvc.Mapping {
	return []uvc.Mapping{
		{
			ID:       uvc.CIDPrivateBase,
			Name:     "point",
			Entity:   entity,
			Selector: x.SelectSelector,
			Size:     meter.BytesPerField,
		},
		{
			ID:       uvc.CIDPrivateBase + 1,
			Name:     "point_ret",
			Entity:   entity,
			Selector: x.ResultSelector,
			Size:     meter.BytesPerField,
		},
	}
}

// policy builds the exposure bounds, optionally from the device range.
// An unreadable or unusable range keeps the configured bounds.
func policy(e cfg.ExposureConfig, dev Device) exposure.Policy {
	p := exposure.Policy{Min: e.Min, Max: e.Max, Step: e.Step}
	if !e.UseDeviceRange {
		return p
	}

	r, err := dev.QueryControl(uvc.CIDExposureAbsolute)
	if err != nil {
		log.Printf("cycle: device exposure range unavailable, keeping %d..%d: %v", p.Min, p.Max, err)
		return p
	}

	dp := p.WithRange(r)
	if err := dp.Validate(); err != nil {
		log.Printf("cycle: device exposure range unusable, keeping %d..%d: %v", p.Min, p.Max, err)
		return p
	}
	return dp
}

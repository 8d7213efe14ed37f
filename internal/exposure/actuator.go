// internal/exposure/actuator.go
package exposure

import (
	"errors"
	"fmt"
	"log"

	"github.com/tamzrod/dynexposure/internal/uvc"
)

// Controls abstracts the standard control get/set primitive of the device.
type Controls interface {
	GetControl(id uint32) (int32, error)
	SetControl(id uint32, value int32) error
}

// Policy bounds every correction.
type Policy struct {
	Min  int32
	Max  int32
	Step int32
}

// DefaultPolicy is the historical 50..300 range with a step of 5.
func DefaultPolicy() Policy {
	return Policy{Min: 50, Max: 300, Step: 5}
}

// Validate checks the policy bounds.
func (p Policy) Validate() error {
	if p.Step <= 0 {
		return fmt.Errorf("exposure: step must be > 0, got %d", p.Step)
	}
	if p.Min >= p.Max {
		return fmt.Errorf("exposure: min %d must be below max %d", p.Min, p.Max)
	}
	return nil
}

// WithRange replaces the bounds with a device-reported range.
// The step never drops below the device granularity.
func (p Policy) WithRange(r uvc.ControlRange) Policy {
	p.Min = r.Min
	p.Max = r.Max
	if r.Step > p.Step {
		p.Step = r.Step
	}
	return p
}

// Clamp limits v to [Min, Max].
func (p Policy) Clamp(v int32) int32 {
	if v < p.Min {
		return p.Min
	}
	if v > p.Max {
		return p.Max
	}
	return v
}

// Next returns the exposure value after one correction step.
func (p Policy) Next(current int32, d Decision) int32 {
	switch d {
	case Over:
		if current < p.Max {
			current += p.Step
		}
		return p.Clamp(current)
	case Under:
		return p.Clamp(current - p.Step)
	default:
		return current
	}
}

// Adjustment describes what one Apply call did.
type Adjustment struct {
	Decision       Decision
	Before         int32
	After          int32
	ManualSwitched bool // a mode-switch write was issued
	Written        bool // the exposure value was written
}

// Actuator applies step-wise exposure corrections.
type Actuator struct {
	dev    Controls
	policy Policy
}

// NewActuator creates an actuator over the given controls.
func NewActuator(dev Controls, p Policy) (*Actuator, error) {
	if dev == nil {
		return nil, errors.New("exposure: controls required")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Actuator{dev: dev, policy: p}, nil
}

// Policy returns the active policy.
func (a *Actuator) Policy() Policy { return a.policy }

// Apply corrects the exposure for one decision.
// Ok is a no-op. Otherwise the camera is put into manual exposure first
// (only if it is not already) and the value is moved by one step.
// A failed mode read or write is logged and the correction still proceeds;
// a failed value read aborts the correction.
func (a *Actuator) Apply(d Decision) (Adjustment, error) {
	adj := Adjustment{Decision: d}
	if d != Over && d != Under {
		return adj, nil
	}

	var errs []error

	switched, err := a.ensureManual()
	adj.ManualSwitched = switched
	if err != nil {
		log.Printf("exposure: %v", err)
		errs = append(errs, err)
	}

	cur, err := a.dev.GetControl(uvc.CIDExposureAbsolute)
	if err != nil {
		errs = append(errs, fmt.Errorf("exposure: read value: %w", err))
		return adj, errors.Join(errs...)
	}
	adj.Before = cur
	adj.After = cur

	next := a.policy.Next(cur, d)
	if next == cur {
		return adj, errors.Join(errs...)
	}

	if err := a.dev.SetControl(uvc.CIDExposureAbsolute, next); err != nil {
		errs = append(errs, fmt.Errorf("exposure: write value %d: %w", next, err))
		return adj, errors.Join(errs...)
	}
	adj.After = next
	adj.Written = true

	return adj, errors.Join(errs...)
}

// ensureManual switches auto exposure off if needed.
// It reports whether a mode-switch write was issued.
func (a *Actuator) ensureManual() (bool, error) {
	mode, err := a.dev.GetControl(uvc.CIDExposureAuto)
	if err == nil && mode == uvc.ExposureManual {
		return false, nil
	}

	// An unreadable mode is treated as "not manual".
	var readErr error
	if err != nil {
		readErr = fmt.Errorf("read auto exposure mode: %w", err)
	}

	if err := a.dev.SetControl(uvc.CIDExposureAuto, uvc.ExposureManual); err != nil {
		return true, errors.Join(readErr, fmt.Errorf("set manual exposure: %w", err))
	}
	log.Printf("exposure: switched to manual exposure")
	return true, readErr
}

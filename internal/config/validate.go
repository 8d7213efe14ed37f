// internal/config/validate.go
package config

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil")
	}

	if cfg.Device == "" {
		return errors.New("config: device path required")
	}
	if cfg.Preset == "" {
		return errors.New("config: preset required")
	}

	// ------------------------------------------------------------
	// EXTENSION UNIT ADDRESSING
	// ------------------------------------------------------------

	if _, err := cfg.XU.Entity(); err != nil {
		return err
	}
	if cfg.XU.SelectSelector == 0 || cfg.XU.ResultSelector == 0 {
		return errors.New("config: xu selectors must be non-zero")
	}
	if cfg.XU.SelectSelector == cfg.XU.ResultSelector {
		return fmt.Errorf(
			"config: xu select_selector and result_selector must differ (both %d)",
			cfg.XU.SelectSelector,
		)
	}

	// ------------------------------------------------------------
	// EXPOSURE POLICY
	// ------------------------------------------------------------

	e := cfg.Exposure
	if e.Step <= 0 {
		return fmt.Errorf("config: exposure step must be > 0, got %d", e.Step)
	}
	if e.Min < 0 {
		return fmt.Errorf("config: exposure min must be >= 0, got %d", e.Min)
	}
	if e.Min >= e.Max {
		return fmt.Errorf("config: exposure min %d must be below max %d", e.Min, e.Max)
	}

	// ------------------------------------------------------------
	// REPORT (OPT-IN)
	// ------------------------------------------------------------

	r := cfg.Report
	if !r.Enabled() {
		return nil
	}

	switch r.Transport {
	case TransportModbus, TransportIngest:
	default:
		return fmt.Errorf("config: report transport %q must be %q or %q",
			r.Transport, TransportModbus, TransportIngest)
	}

	if r.TimeoutMs <= 0 {
		return fmt.Errorf("config: report timeout_ms must be > 0, got %d", r.TimeoutMs)
	}

	for i := 0; i < len(r.DeviceName); i++ {
		if r.DeviceName[i] > 0x7F {
			return errors.New("config: report device_name must contain ASCII characters only")
		}
	}

	return nil
}

// Entity parses the extension unit GUID into the 16 bytes the driver expects.
func (x XUConfig) Entity() ([16]byte, error) {
	id, err := uuid.Parse(x.GUID)
	if err != nil {
		return [16]byte{}, fmt.Errorf("config: xu guid %q: %w", x.GUID, err)
	}
	return [16]byte(id), nil
}

// internal/config/normalize.go
package config

// Normalize fills unset values with the built-in defaults.
// It is allowed to mutate configuration.
// Load calls it before Validate so that partial files are accepted.
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Device == "" {
		cfg.Device = DefaultDevice
	}
	if cfg.Preset == "" {
		cfg.Preset = DefaultPreset
	}

	// ------------------------------------------------------------
	// EXTENSION UNIT ADDRESSING
	// ------------------------------------------------------------

	if cfg.XU.GUID == "" {
		cfg.XU.GUID = DefaultGUID
	}
	if cfg.XU.UnitID == 0 {
		cfg.XU.UnitID = DefaultUnitID
	}
	if cfg.XU.SelectSelector == 0 {
		cfg.XU.SelectSelector = DefaultSelectSelector
	}
	if cfg.XU.ResultSelector == 0 {
		cfg.XU.ResultSelector = DefaultResultSelector
	}

	// ------------------------------------------------------------
	// EXPOSURE POLICY
	// ------------------------------------------------------------

	// min == max == 0 means "not configured"; a single bound is kept as given.
	if cfg.Exposure.Min == 0 && cfg.Exposure.Max == 0 {
		cfg.Exposure.Min = DefaultExposureMin
		cfg.Exposure.Max = DefaultExposureMax
	}
	if cfg.Exposure.Step == 0 {
		cfg.Exposure.Step = DefaultExposureStep
	}

	// ------------------------------------------------------------
	// REPORT (OPT-IN)
	// ------------------------------------------------------------

	if !cfg.Report.Enabled() {
		return
	}
	if cfg.Report.Transport == "" {
		cfg.Report.Transport = TransportModbus
	}
	if cfg.Report.TimeoutMs <= 0 {
		cfg.Report.TimeoutMs = DefaultReportTimeoutMs
	}
	if cfg.Report.UnitID == 0 {
		cfg.Report.UnitID = 1
	}
	// Truncate to the 16 characters the status block holds.
	if len(cfg.Report.DeviceName) > 16 {
		cfg.Report.DeviceName = cfg.Report.DeviceName[:16]
	}
}

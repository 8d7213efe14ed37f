// internal/config/config.go
package config

type Config struct {
	Device     string           `yaml:"device"`
	Preset     string           `yaml:"preset"`
	XU         XUConfig         `yaml:"xu"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Exposure   ExposureConfig   `yaml:"exposure"`
	Report     ReportConfig     `yaml:"report"`
}

// ---- EXTENSION UNIT ----

type XUConfig struct {
	GUID           string `yaml:"guid"`
	UnitID         uint8  `yaml:"unit_id"`
	SelectSelector uint8  `yaml:"select_selector"`
	ResultSelector uint8  `yaml:"result_selector"`

	// Register both selectors as V4L2 controls before sampling (optional).
	MapControls bool `yaml:"map_controls"`
}

// ---- CLASSIFIER ----

type ClassifierConfig struct {
	Strict bool `yaml:"strict"` // skip fields whose transaction failed
}

// ---- EXPOSURE POLICY ----

type ExposureConfig struct {
	Min  int32 `yaml:"min"`
	Max  int32 `yaml:"max"`
	Step int32 `yaml:"step"`

	// Replace min/max with the range the driver reports.
	UseDeviceRange bool `yaml:"use_device_range"`
}

// ---- REPORT (optional, opt-in) ----

type ReportConfig struct {
	Endpoint   string `yaml:"endpoint"`  // host:port, empty disables
	Transport  string `yaml:"transport"` // modbus | ingest
	UnitID     uint8  `yaml:"unit_id"`
	Address    uint16 `yaml:"address"`
	TimeoutMs  int    `yaml:"timeout_ms"`
	DeviceName string `yaml:"device_name"`

	// Read the block back after writing (modbus only).
	Verify bool `yaml:"verify"`
}

// Enabled reports whether a report endpoint is configured.
func (r ReportConfig) Enabled() bool { return r.Endpoint != "" }

const (
	TransportModbus = "modbus"
	TransportIngest = "ingest"
)

// Defaults for the Logitech QuickCam Pro for Notebooks (046d:0991).
const (
	DefaultDevice         = "/dev/video0"
	DefaultPreset         = "full"
	DefaultGUID           = "82066163-7050-ab49-b8cc-b3855e8d2252"
	DefaultUnitID         = 10
	DefaultSelectSelector = 5
	DefaultResultSelector = 6

	DefaultExposureMin  = 50
	DefaultExposureMax  = 300
	DefaultExposureStep = 5

	DefaultReportTimeoutMs = 1000
)

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	Normalize(c)
	return c
}

// internal/config/load_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse_EmptyGivesDefaults(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse() err=%v", err)
	}

	if c.Device != DefaultDevice {
		t.Fatalf("device: got=%q want=%q", c.Device, DefaultDevice)
	}
	if c.Preset != DefaultPreset {
		t.Fatalf("preset: got=%q want=%q", c.Preset, DefaultPreset)
	}
	if c.XU.UnitID != DefaultUnitID || c.XU.SelectSelector != 5 || c.XU.ResultSelector != 6 {
		t.Fatalf("xu addressing not defaulted: %+v", c.XU)
	}
	if c.Exposure.Min != 50 || c.Exposure.Max != 300 || c.Exposure.Step != 5 {
		t.Fatalf("exposure policy not defaulted: %+v", c.Exposure)
	}
	if c.Report.Enabled() {
		t.Fatalf("report should be disabled by default")
	}
}

func TestParse_PartialFile(t *testing.T) {
	src := []byte(`
device: /dev/video2
preset: center-2x2
classifier:
  strict: true
exposure:
  step: 10
report:
  endpoint: 127.0.0.1:1502
  device_name: LOGITECH-QUICKCAM-PRO
`)

	c, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() err=%v", err)
	}

	if c.Device != "/dev/video2" || c.Preset != "center-2x2" {
		t.Fatalf("unexpected device/preset: %q %q", c.Device, c.Preset)
	}
	if !c.Classifier.Strict {
		t.Fatalf("strict not parsed")
	}
	if c.Exposure.Step != 10 || c.Exposure.Min != 50 || c.Exposure.Max != 300 {
		t.Fatalf("unexpected exposure policy: %+v", c.Exposure)
	}
	if c.Report.Transport != TransportModbus {
		t.Fatalf("report transport: got=%q want=%q", c.Report.Transport, TransportModbus)
	}
	if c.Report.TimeoutMs != DefaultReportTimeoutMs {
		t.Fatalf("report timeout: got=%d want=%d", c.Report.TimeoutMs, DefaultReportTimeoutMs)
	}
	if len(c.Report.DeviceName) != 16 {
		t.Fatalf("device name not truncated: %q", c.Report.DeviceName)
	}
}

func TestParse_UnknownKeyRejected(t *testing.T) {
	if _, err := Parse([]byte("devcie: /dev/video0\n")); err == nil {
		t.Fatalf("expected unknown key error, got nil")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dynexposure.yaml")
	if err := os.WriteFile(path, []byte("preset: center\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err=%v", err)
	}
	if c.Preset != "center" {
		t.Fatalf("preset: got=%q want=center", c.Preset)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected read error, got nil")
	}
}

// internal/config/validate_test.go
package config

import "testing"

// helper: defaults with an optional report endpoint
func withReport(endpoint, transport string) *Config {
	c := Default()
	c.Report = ReportConfig{
		Endpoint:  endpoint,
		Transport: transport,
		TimeoutMs: 500,
	}
	return c
}

// ---- tests ----

func TestValidate_DefaultsPass(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_BadGUID(t *testing.T) {
	c := Default()
	c.XU.GUID = "not-a-guid"

	if err := Validate(c); err == nil {
		t.Fatalf("expected guid error, got nil")
	}
}

func TestValidate_SameSelectors(t *testing.T) {
	c := Default()
	c.XU.ResultSelector = c.XU.SelectSelector

	if err := Validate(c); err == nil {
		t.Fatalf("expected selector error, got nil")
	}
}

func TestValidate_ExposureBounds(t *testing.T) {
	cases := []struct {
		name          string
		min, max, stp int32
		wantErr       bool
	}{
		{"defaults", 50, 300, 5, false},
		{"min equals max", 100, 100, 5, true},
		{"min above max", 300, 50, 5, true},
		{"negative min", -1, 300, 5, true},
		{"zero step", 50, 300, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			c.Exposure.Min = tc.min
			c.Exposure.Max = tc.max
			c.Exposure.Step = tc.stp

			err := Validate(c)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidate_ReportTransport(t *testing.T) {
	if err := Validate(withReport("127.0.0.1:502", TransportModbus)); err != nil {
		t.Fatalf("modbus: unexpected error: %v", err)
	}
	if err := Validate(withReport("127.0.0.1:9000", TransportIngest)); err != nil {
		t.Fatalf("ingest: unexpected error: %v", err)
	}
	if err := Validate(withReport("127.0.0.1:9000", "mqtt")); err == nil {
		t.Fatalf("expected transport error, got nil")
	}
}

func TestValidate_ReportDisabledIgnoresTransport(t *testing.T) {
	c := withReport("", "mqtt")

	if err := Validate(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DeviceNameASCII(t *testing.T) {
	c := withReport("127.0.0.1:502", TransportModbus)
	c.Report.DeviceName = "カメラ"

	if err := Validate(c); err == nil {
		t.Fatalf("expected ascii error, got nil")
	}
}

func TestEntity_ByteOrder(t *testing.T) {
	e, err := Default().XU.Entity()
	if err != nil {
		t.Fatalf("Entity() err=%v", err)
	}

	want := [16]byte{
		0x82, 0x06, 0x61, 0x63, 0x70, 0x50, 0xab, 0x49,
		0xb8, 0xcc, 0xb3, 0x85, 0x5e, 0x8d, 0x22, 0x52,
	}
	if e != want {
		t.Fatalf("entity mismatch: got=% x want=% x", e, want)
	}
}

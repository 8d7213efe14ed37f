// internal/writer/types.go
package writer

import (
	"time"

	"github.com/tamzrod/dynexposure/internal/status"
)

// Plan is the fully-built delivery plan for the cycle status block.
type Plan struct {
	Endpoint   string
	Transport  string // modbus | ingest
	UnitID     uint8
	Address    uint16
	DeviceName string
	Timeout    time.Duration
	Verify     bool
}

// Writer delivers one cycle snapshot.
type Writer interface {
	Write(s status.Snapshot) error
}

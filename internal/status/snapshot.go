// internal/status/snapshot.go
package status

import (
	"time"

	"github.com/tamzrod/dynexposure/internal/exposure"
	"github.com/tamzrod/dynexposure/internal/meter"
)

// Snapshot is everything one measurement-and-correction cycle produced.
// It contains no logic and no memory of earlier cycles.
type Snapshot struct {
	RunID  string
	At     time.Time
	Device string

	Grid    meter.Grid
	Samples meter.Samples

	Decision exposure.Decision
	Score    int

	ExposureBefore int32
	ExposureAfter  int32
	ManualSwitched bool

	Strict bool
	DryRun bool

	InvalidFields int
	LastErrorCode uint16
}

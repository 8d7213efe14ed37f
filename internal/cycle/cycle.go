// internal/cycle/cycle.go
package cycle

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/tamzrod/dynexposure/internal/exposure"
	"github.com/tamzrod/dynexposure/internal/meter"
	"github.com/tamzrod/dynexposure/internal/status"
)

// Options tune one cycle.
type Options struct {
	Mode   exposure.Mode
	DryRun bool // classify only, never touch exposure controls
}

// Runner performs measurement-and-correction cycles on one device.
// One cycle per call; there is no internal loop.
type Runner struct {
	device  string
	session *meter.Session
	act     *exposure.Actuator
	opts    Options
}

// New creates a runner. act may be nil only in dry-run mode.
func New(device string, session *meter.Session, act *exposure.Actuator, opts Options) (*Runner, error) {
	if session == nil {
		return nil, errors.New("cycle: session required")
	}
	if act == nil && !opts.DryRun {
		return nil, errors.New("cycle: actuator required")
	}
	return &Runner{
		device:  device,
		session: session,
		act:     act,
		opts:    opts,
	}, nil
}

// RunOnce samples every field, classifies the active window and applies
// one correction step. Transport errors never abort the cycle; the returned
// error reports a failed correction only.
func (r *Runner) RunOnce() (status.Snapshot, error) {
	snap := status.Snapshot{
		RunID:  uuid.NewString(),
		At:     time.Now(),
		Device: r.device,
		Strict: r.opts.Mode == exposure.Strict,
		DryRun: r.opts.DryRun,
	}

	res := r.session.Sample()
	snap.Grid = res.Grid
	snap.Samples = res.Samples
	snap.InvalidFields = len(res.Failures)
	if len(res.Failures) > 0 {
		log.Printf("cycle %s: %d of %d fields failed", snap.RunID, len(res.Failures), res.Grid.FieldsCount())
	}

	cls := exposure.Classify(res.Samples, res.Grid, r.opts.Mode)
	snap.Decision = cls.Decision
	snap.Score = cls.Score
	if cls.Decision == exposure.Unknown {
		log.Printf("cycle %s: no usable samples, correction skipped", snap.RunID)
	}

	lastErr := res.Err()

	if r.opts.DryRun {
		snap.LastErrorCode = errorCode(lastErr)
		return snap, nil
	}

	adj, err := r.act.Apply(cls.Decision)
	snap.ExposureBefore = adj.Before
	snap.ExposureAfter = adj.After
	snap.ManualSwitched = adj.ManualSwitched
	if err != nil {
		lastErr = err
	}
	snap.LastErrorCode = errorCode(lastErr)

	if adj.Written {
		log.Printf("cycle %s: %s, exposure %d -> %d", snap.RunID, cls.Decision, adj.Before, adj.After)
	}

	return snap, err
}

// internal/exposure/classifier.go
package exposure

import "github.com/tamzrod/dynexposure/internal/meter"

// Decision is the classifier output driving the actuator.
type Decision int

const (
	Unknown Decision = iota
	Under
	Ok
	Over
)

func (d Decision) String() string {
	switch d {
	case Under:
		return "under"
	case Ok:
		return "ok"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// Brightness thresholds for one sample. Not configurable.
const (
	LowThreshold  = 0x30
	HighThreshold = 0x60
)

// Per-sample score weights. Overexposure counts double.
const (
	weightUnder = -1
	weightOk    = 1
	weightOver  = 2
)

// Mode selects how samples of failed fields are treated.
type Mode int

const (
	// Lenient scores every sample, including stale ones.
	Lenient Mode = iota
	// Strict skips samples whose field transaction failed.
	Strict
)

// Result is the outcome of one classification pass.
type Result struct {
	Decision Decision
	Score    int
	Examined int // samples scored
	Skipped  int // samples ignored in strict mode
}

// Classify scores the grid window of the sample buffer.
// Pure: the result depends only on the inputs.
// In strict mode the score bounds are scaled to the samples actually
// examined; with none examined the decision is Unknown.
func Classify(s meter.Samples, g meter.Grid, mode Mode) Result {
	var res Result

	size := g.ResultSize()
	rowWidth := g.ResultWidth()
	if rowWidth <= 0 || size > len(s.Data) {
		return res
	}

	for rowStart := 0; rowStart < size; rowStart += rowWidth {
		for col := g.WidthOffset; col < g.WidthOffset+g.Width; col++ {
			idx := rowStart + col

			if mode == Strict && !s.FieldValid(idx) {
				res.Skipped++
				continue
			}

			res.Score += Score(s.Data[idx])
			res.Examined++
		}
	}

	switch {
	case res.Examined == 0:
		// nothing measured: no decision, no correction
		res.Decision = Unknown
	case res.Skipped > 0:
		// bounds shrink with the examined share of the window
		total := res.Examined + res.Skipped
		res.Decision = Decide(res.Score*total, g.LowScore*res.Examined, g.HighScore*res.Examined)
	default:
		res.Decision = Decide(res.Score, g.LowScore, g.HighScore)
	}
	return res
}

// Score returns the weight of a single sample.
func Score(sample byte) int {
	switch {
	case sample < LowThreshold:
		return weightUnder
	case sample > HighThreshold:
		return weightOver
	default:
		return weightOk
	}
}

// Decide maps an aggregate score to a decision.
func Decide(score, low, high int) Decision {
	switch {
	case score > high:
		return Over
	case score < low:
		return Under
	default:
		return Ok
	}
}

// internal/meter/sampler.go
package meter

import (
	"errors"
	"log"
)

// Session owns the transport, the active grid and the sample buffer.
// One session per device; not safe for concurrent use.
type Session struct {
	transport *Transport
	grid      Grid
	samples   Samples
}

// NewSession creates a session with the given grid active.
func NewSession(t *Transport, g Grid) (*Session, error) {
	if t == nil {
		return nil, errors.New("meter: transport required")
	}
	s := &Session{transport: t}
	if err := s.Configure(g); err != nil {
		return nil, err
	}
	return s, nil
}

// Configure replaces the active grid. The sample buffer is kept.
func (s *Session) Configure(g Grid) error {
	if err := g.Validate(); err != nil {
		return err
	}
	s.grid = g
	return nil
}

// Grid returns the active grid.
func (s *Session) Grid() Grid { return s.grid }

// Sample performs exactly one sampling pass over the active field table.
// Fields are read strictly in table order. A failed transaction is logged
// and skipped: the field's buffer slot keeps its previous content and the
// field is marked invalid.
func (s *Session) Sample() SampleResult {
	res := SampleResult{Grid: s.grid}

	for i := 0; i < s.grid.FieldsCount(); i++ {
		f := s.grid.Table.At(i)

		v, err := s.transport.Transact(f)
		if err != nil {
			log.Printf("meter: field %d (0x%02x) failed: %v", i, f.Register(), err)
			s.samples.Valid[i] = false
			res.Failures = append(res.Failures, FieldError{Index: i, Address: f, Err: err})
			continue
		}

		copy(s.samples.Data[i*BytesPerField:], v[:])
		s.samples.Valid[i] = true
	}

	res.Samples = s.samples
	return res
}

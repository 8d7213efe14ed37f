// internal/meter/builder.go
package meter

import (
	cfg "github.com/tamzrod/dynexposure/internal/config"
)

// Build constructs a metering session from config over the given extension unit.
// Assumes config has already passed validation.
func Build(c *cfg.Config, xu XU) (*Session, error) {
	grid, err := Preset(c.Preset)
	if err != nil {
		return nil, err
	}

	t, err := NewTransport(xu, Addressing{
		UnitID:         c.XU.UnitID,
		SelectSelector: c.XU.SelectSelector,
		ResultSelector: c.XU.ResultSelector,
	})
	if err != nil {
		return nil, err
	}

	return NewSession(t, grid)
}

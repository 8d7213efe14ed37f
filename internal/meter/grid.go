// internal/meter/grid.go
package meter

import (
	"fmt"
	"sort"
	"strings"
)

// Physical field layout of the RightLight metering block.
// Each field has a left and a right part, two fields per row:
//
//	| c4 | c5 |
//	| c6 | c7 |
//	| c8 | c9 |
//	| ca | cb |
var (
	// TableFull covers the whole sensor.
	TableFull = NewFieldTable("full",
		0xc402, 0xc502, 0xc602, 0xc702, 0xc802, 0xc902, 0xca02, 0xcb02)

	// TableMiddle covers the two middle rows.
	TableMiddle = NewFieldTable("middle",
		0xc602, 0xc702, 0xc802, 0xc902)
)

// Score bounds tuned for the full 4x4 window. Every preset uses them
// unchanged; smaller windows can never reach HighScore.
const (
	DefaultLowScore  = 10
	DefaultHighScore = 18
)

// ---- presets ----

const (
	PresetFull      = "full"
	PresetCenter    = "center"
	PresetCenter2x2 = "center-2x2"
)

var presets = map[string]Grid{
	// All 16 parts, 4 per row.
	PresetFull: {
		Name:      PresetFull,
		Table:     TableFull,
		Width:     4,
		Height:    4,
		LowScore:  DefaultLowScore,
		HighScore: DefaultHighScore,
	},
	// Inner two parts of every row of the full table.
	PresetCenter: {
		Name:        PresetCenter,
		Table:       TableFull,
		Width:       2,
		Height:      4,
		WidthOffset: 1,
		LowScore:    DefaultLowScore,
		HighScore:   DefaultHighScore,
	},
	// Inner two parts of the two middle rows.
	PresetCenter2x2: {
		Name:        PresetCenter2x2,
		Table:       TableMiddle,
		Width:       2,
		Height:      2,
		WidthOffset: 1,
		LowScore:    DefaultLowScore,
		HighScore:   DefaultHighScore,
	},
}

// Preset returns the named grid.
func Preset(name string) (Grid, error) {
	g, ok := presets[name]
	if !ok {
		return Grid{}, fmt.Errorf("meter: unknown preset %q (known: %s)",
			name, strings.Join(PresetNames(), ", "))
	}
	return g, nil
}

// PresetNames lists the registered presets in sorted order.
func PresetNames() []string {
	out := make([]string, 0, len(presets))
	for name := range presets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// internal/meter/types.go
package meter

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// BytesPerField is the size of one field result: left part, right part.
const BytesPerField = 2

// MaxFields is the largest field table any preset may use.
const MaxFields = 8

// SampleCapacity is the fixed size of the sample buffer.
const SampleCapacity = MaxFields * BytesPerField

// FieldAddress is the encoded "select field" payload for one metering field:
// the field register in the high byte, the 0x02 select tag in the low byte.
type FieldAddress uint16

// Register returns the field register number (e.g. 0xc4).
func (a FieldAddress) Register() uint8 { return uint8(a >> 8) }

// Payload returns the two bytes sent with the select request.
// The device takes the value in host (little-endian) order.
func (a FieldAddress) Payload() [2]byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(a))
	return b
}

// FieldTable is a named, immutable sequence of field addresses.
type FieldTable struct {
	name   string
	fields []FieldAddress
}

// NewFieldTable copies fields into a new table.
func NewFieldTable(name string, fields ...FieldAddress) FieldTable {
	cp := make([]FieldAddress, len(fields))
	copy(cp, fields)
	return FieldTable{name: name, fields: cp}
}

func (t FieldTable) Name() string          { return t.name }
func (t FieldTable) Len() int              { return len(t.fields) }
func (t FieldTable) At(i int) FieldAddress { return t.fields[i] }

// Grid describes how the samples of one field table are laid out
// and which window of them is classified.
// Geometry only: no device semantics.
type Grid struct {
	Name        string
	Table       FieldTable
	Width       int
	Height      int
	WidthOffset int

	// Score bounds used by the classifier for this layout.
	LowScore  int
	HighScore int
}

// FieldsCount is the number of fields sampled for this grid.
func (g Grid) FieldsCount() int { return g.Table.Len() }

// ResultSize is the number of sample bytes the grid produces.
func (g Grid) ResultSize() int { return g.FieldsCount() * BytesPerField }

// ResultWidth is the number of sample bytes per row.
func (g Grid) ResultWidth() int {
	if g.Height <= 0 {
		return 0
	}
	return g.ResultSize() / g.Height
}

// Validate checks the geometry invariants.
func (g Grid) Validate() error {
	if g.FieldsCount() == 0 {
		return errors.New("meter: grid has no fields")
	}
	if g.FieldsCount() > MaxFields {
		return fmt.Errorf("meter: grid %q has %d fields, max %d", g.Name, g.FieldsCount(), MaxFields)
	}
	if g.Width <= 0 || g.Height <= 0 || g.WidthOffset < 0 {
		return fmt.Errorf("meter: grid %q: invalid geometry width=%d height=%d offset=%d",
			g.Name, g.Width, g.Height, g.WidthOffset)
	}
	if g.ResultWidth()*g.Height != g.ResultSize() {
		return fmt.Errorf("meter: grid %q: result size %d not divisible by height %d",
			g.Name, g.ResultSize(), g.Height)
	}
	if g.Width+g.WidthOffset > g.ResultWidth() {
		return fmt.Errorf("meter: grid %q: window %d+%d exceeds row width %d",
			g.Name, g.WidthOffset, g.Width, g.ResultWidth())
	}
	if g.LowScore > g.HighScore {
		return fmt.Errorf("meter: grid %q: low score %d above high score %d",
			g.Name, g.LowScore, g.HighScore)
	}
	return nil
}

// Samples is the raw result buffer of one sampling pass plus per-field validity.
// Data is laid out in field table order, BytesPerField bytes per field.
type Samples struct {
	Data  [SampleCapacity]byte
	Valid [MaxFields]bool
}

// FieldValid reports whether the field owning sample byte idx was read
// successfully in the last pass.
func (s *Samples) FieldValid(idx int) bool {
	return s.Valid[idx/BytesPerField]
}

// InvalidFields counts the fields of the first n that were not read.
func (s *Samples) InvalidFields(n int) int {
	c := 0
	for i := 0; i < n && i < MaxFields; i++ {
		if !s.Valid[i] {
			c++
		}
	}
	return c
}

// FieldError records one failed select/read transaction.
type FieldError struct {
	Index   int
	Address FieldAddress
	Err     error
}

// SampleResult is a snapshot produced by one sampling pass.
type SampleResult struct {
	Grid    Grid
	Samples Samples

	// Failed transactions, in table order. The matching buffer slots
	// keep their previous content.
	Failures []FieldError
}

// Err returns the last transaction error of the pass, if any.
func (r SampleResult) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	return r.Failures[len(r.Failures)-1].Err
}

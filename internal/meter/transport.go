// internal/meter/transport.go
package meter

import (
	"errors"
	"fmt"

	"github.com/tamzrod/dynexposure/internal/uvc"
)

// XU abstracts the raw extension unit request of the device.
type XU interface {
	Query(unit, selector, query uint8, data []byte) error
}

// Addressing locates the metering registers inside the extension unit.
type Addressing struct {
	UnitID         uint8
	SelectSelector uint8 // SET_CUR: current field
	ResultSelector uint8 // GET_CUR: current field result
}

// Validate checks that both selectors are usable.
func (a Addressing) Validate() error {
	if a.SelectSelector == 0 || a.ResultSelector == 0 {
		return errors.New("meter: xu selectors must be non-zero")
	}
	if a.SelectSelector == a.ResultSelector {
		return errors.New("meter: xu select and result selectors must differ")
	}
	return nil
}

// Transport performs the paired select/read transaction.
// It owns two reusable request buffers and must not be shared.
type Transport struct {
	xu   XU
	addr Addressing

	sel [BytesPerField]byte
	res [BytesPerField]byte
}

// NewTransport binds a transport to one extension unit.
func NewTransport(xu XU, addr Addressing) (*Transport, error) {
	if xu == nil {
		return nil, errors.New("meter: xu required")
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return &Transport{xu: xu, addr: addr}, nil
}

// Select writes the field payload to the "current field" register.
func (t *Transport) Select(f FieldAddress) error {
	t.sel = f.Payload()
	if err := t.xu.Query(t.addr.UnitID, t.addr.SelectSelector, uvc.QuerySetCur, t.sel[:]); err != nil {
		return fmt.Errorf("meter: select field 0x%02x: %w", f.Register(), err)
	}
	return nil
}

// Read fetches the "current result" register.
func (t *Transport) Read() ([BytesPerField]byte, error) {
	t.res = [BytesPerField]byte{}
	if err := t.xu.Query(t.addr.UnitID, t.addr.ResultSelector, uvc.QueryGetCur, t.res[:]); err != nil {
		return [BytesPerField]byte{}, fmt.Errorf("meter: read field result: %w", err)
	}
	return t.res, nil
}

// Transact selects a field and reads its result, in that order.
func (t *Transport) Transact(f FieldAddress) ([BytesPerField]byte, error) {
	if err := t.Select(f); err != nil {
		return [BytesPerField]byte{}, err
	}
	return t.Read()
}

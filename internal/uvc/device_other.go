//go:build !linux

// internal/uvc/device_other.go
package uvc

// Device is a placeholder on platforms without uvcvideo.
type Device struct{}

func Open(path string) (*Device, error) { return nil, ErrUnsupported }

func (d *Device) Close() error { return nil }

func (d *Device) GetControl(id uint32) (int32, error) { return 0, ErrUnsupported }

func (d *Device) SetControl(id uint32, value int32) error { return ErrUnsupported }

func (d *Device) QueryControl(id uint32) (ControlRange, error) {
	return ControlRange{}, ErrUnsupported
}

func (d *Device) Query(unit, selector, query uint8, data []byte) error { return ErrUnsupported }

func (d *Device) MapControls(maps []Mapping) error { return ErrUnsupported }

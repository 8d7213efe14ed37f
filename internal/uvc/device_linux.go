//go:build linux

// internal/uvc/device_linux.go
package uvc

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Device is an open V4L2 video node driven by uvcvideo.
// Not safe for concurrent use: XU queries are select-then-read pairs.
type Device struct {
	fd int
}

// ---- kernel structures (layout must match linux/uvcvideo.h, linux/videodev2.h) ----

type xuControlQuery struct {
	unit     uint8
	selector uint8
	query    uint8
	size     uint16
	data     unsafe.Pointer
}

type xuControlMapping struct {
	id        uint32
	name      [32]byte
	entity    [16]byte
	selector  uint8
	size      uint8
	offset    uint8
	v4l2Type  uint32
	dataType  uint32
	menuInfo  unsafe.Pointer
	menuCount uint32
	reserved  [4]uint32
}

type v4l2Control struct {
	id    uint32
	value int32
}

type v4l2Queryctrl struct {
	id           uint32
	typ          uint32
	name         [32]byte
	minimum      int32
	maximum      int32
	step         int32
	defaultValue int32
	flags        uint32
	reserved     [2]uint32
}

// ---- ioctl request numbers ----

const (
	iocWrite = 1
	iocRead  = 2
)

func iowr(typ, nr, size uintptr) uintptr {
	return (iocRead|iocWrite)<<30 | size<<16 | typ<<8 | nr
}

var (
	uvciocCtrlMap   = iowr('u', 0x20, unsafe.Sizeof(xuControlMapping{}))
	uvciocCtrlQuery = iowr('u', 0x21, unsafe.Sizeof(xuControlQuery{}))
	vidiocGCtrl     = iowr('V', 27, unsafe.Sizeof(v4l2Control{}))
	vidiocSCtrl     = iowr('V', 28, unsafe.Sizeof(v4l2Control{}))
	vidiocQueryCtrl = iowr('V', 36, unsafe.Sizeof(v4l2Queryctrl{}))
)

// Open opens the video node read-write.
func Open(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("uvc: open %s: %w", path, err)
	}
	return &Device{fd: fd}, nil
}

// Close releases the file descriptor. Control values set during the
// session stay on the camera.
func (d *Device) Close() error {
	if d == nil || d.fd < 0 {
		return nil
	}
	err := unix.Close(d.fd)
	d.fd = -1
	return err
}

func (d *Device) ioctl(req uintptr, arg unsafe.Pointer) error {
	if d == nil || d.fd < 0 {
		return errors.New("uvc: device not open")
	}
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// GetControl reads a standard control (VIDIOC_G_CTRL).
func (d *Device) GetControl(id uint32) (int32, error) {
	c := v4l2Control{id: id}
	if err := d.ioctl(vidiocGCtrl, unsafe.Pointer(&c)); err != nil {
		return 0, fmt.Errorf("uvc: get control 0x%08x: %w", id, err)
	}
	return c.value, nil
}

// SetControl writes a standard control (VIDIOC_S_CTRL).
func (d *Device) SetControl(id uint32, value int32) error {
	c := v4l2Control{id: id, value: value}
	if err := d.ioctl(vidiocSCtrl, unsafe.Pointer(&c)); err != nil {
		return fmt.Errorf("uvc: set control 0x%08x=%d: %w", id, value, err)
	}
	return nil
}

// QueryControl returns the range the driver reports for a control.
func (d *Device) QueryControl(id uint32) (ControlRange, error) {
	q := v4l2Queryctrl{id: id}
	if err := d.ioctl(vidiocQueryCtrl, unsafe.Pointer(&q)); err != nil {
		return ControlRange{}, fmt.Errorf("uvc: query control 0x%08x: %w", id, err)
	}
	return ControlRange{
		Min:     q.minimum,
		Max:     q.maximum,
		Step:    q.step,
		Default: q.defaultValue,
	}, nil
}

// Query issues one raw extension unit request (UVCIOC_CTRL_QUERY).
// For GET requests the driver fills data; for SET requests data is sent.
func (d *Device) Query(unit, selector, query uint8, data []byte) error {
	if len(data) == 0 || len(data) > 0xffff {
		return fmt.Errorf("uvc: xu query: invalid buffer size %d", len(data))
	}
	q := xuControlQuery{
		unit:     unit,
		selector: selector,
		query:    query,
		size:     uint16(len(data)),
		data:     unsafe.Pointer(&data[0]),
	}
	if err := d.ioctl(uvciocCtrlQuery, unsafe.Pointer(&q)); err != nil {
		return fmt.Errorf("uvc: xu query unit=%d selector=%d query=0x%02x: %w", unit, selector, query, err)
	}
	return nil
}

// MapControls registers XU selectors as V4L2 controls (UVCIOC_CTRL_MAP).
// A mapping the driver already knows (EEXIST) is not an error.
func (d *Device) MapControls(maps []Mapping) error {
	for _, m := range maps {
		xm := xuControlMapping{
			id:       m.ID,
			entity:   m.Entity,
			selector: m.Selector,
			size:     m.Size * 8,
			v4l2Type: ctrlTypeInteger,
			dataType: ctrlDataTypeUnsigned,
		}
		copy(xm.name[:len(xm.name)-1], m.Name)

		err := d.ioctl(uvciocCtrlMap, unsafe.Pointer(&xm))
		if err != nil && !errors.Is(err, unix.EEXIST) {
			return fmt.Errorf("uvc: map control %q selector=%d: %w", m.Name, m.Selector, err)
		}
	}
	return nil
}

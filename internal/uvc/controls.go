// internal/uvc/controls.go
package uvc

import "errors"

// ErrUnsupported is returned on platforms without the uvcvideo ioctl interface.
var ErrUnsupported = errors.New("uvc: platform not supported")

// ---- V4L2 control ids ----

const (
	cidCameraClassBase uint32 = 0x009a0900

	// CIDExposureAuto selects the auto-exposure mode.
	CIDExposureAuto uint32 = cidCameraClassBase + 1

	// CIDExposureAbsolute is the absolute exposure time (100us units).
	CIDExposureAbsolute uint32 = cidCameraClassBase + 2

	// CIDPrivateBase is the first id handed out to mapped XU controls.
	CIDPrivateBase uint32 = 0x08000000
)

// ExposureManual is the CIDExposureAuto value for manual exposure.
const ExposureManual int32 = 1

// ---- UVC request codes ----

const (
	QuerySetCur uint8 = 0x01
	QueryGetCur uint8 = 0x81
)

// ---- control mapping ----

const (
	ctrlTypeInteger      uint32 = 1
	ctrlDataTypeUnsigned uint32 = 2
)

// ControlRange is the device-reported range of a standard control.
type ControlRange struct {
	Min     int32
	Max     int32
	Step    int32
	Default int32
}

// Mapping registers one XU selector as a V4L2 control.
type Mapping struct {
	ID       uint32
	Name     string
	Entity   [16]byte
	Selector uint8
	Size     uint8 // bytes
}

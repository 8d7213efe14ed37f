// internal/status/encode.go
package status

import (
	"github.com/tamzrod/dynexposure/internal/exposure"
	"github.com/tamzrod/dynexposure/internal/meter"
)

// Encode converts a Snapshot into a full cycle status block.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(s Snapshot, deviceName string) []uint16 {
	regs := make([]uint16, SlotsPerBlock)

	regs[SlotDecision] = decisionCode(s.Decision)
	regs[SlotScore] = uint16(int16(s.Score))
	regs[SlotExposureBefore] = clampU16(s.ExposureBefore)
	regs[SlotExposureAfter] = clampU16(s.ExposureAfter)
	regs[SlotFlags] = flags(s)
	regs[SlotInvalidFields] = uint16(s.InvalidFields)
	regs[SlotLastErrorCode] = s.LastErrorCode

	// Slot 7 is RESERVED → left as zero

	n := s.Grid.FieldsCount()
	for i := 0; i < SlotSamplesSlots && i < n; i++ {
		hi := s.Samples.Data[i*meter.BytesPerField]
		lo := s.Samples.Data[i*meter.BytesPerField+1]
		regs[SlotSamplesStart+i] = uint16(hi)<<8 | uint16(lo)
	}

	copy(regs[SlotDeviceNameStart:], EncodeDeviceName(deviceName))

	return regs
}

// EncodeDeviceName packs up to 16 ASCII characters into 8 uint16 registers.
// Each register stores two ASCII bytes in big-endian order.
func EncodeDeviceName(name string) []uint16 {
	out := make([]uint16, SlotDeviceNameSlots)

	b := []byte(name)
	if len(b) > DeviceNameMaxChars {
		b = b[:DeviceNameMaxChars]
	}

	// sanitize to printable ASCII
	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < DeviceNameMaxChars; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}

func decisionCode(d exposure.Decision) uint16 {
	switch d {
	case exposure.Under:
		return DecisionUnder
	case exposure.Ok:
		return DecisionOk
	case exposure.Over:
		return DecisionOver
	default:
		return DecisionUnknown
	}
}

func flags(s Snapshot) uint16 {
	var f uint16
	if s.ManualSwitched {
		f |= FlagManualSwitched
	}
	if s.Strict {
		f |= FlagStrict
	}
	if s.DryRun {
		f |= FlagDryRun
	}
	return f
}

func clampU16(v int32) uint16 {
	if v < 0 {
		return 0
	}
	if v > 0xffff {
		return 0xffff
	}
	return uint16(v)
}

// internal/status/constants.go
package status

// Cycle Status Block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerBlock is the fixed number of registers of one status block.
const SlotsPerBlock = 24

// ---- SLOT INDICES ----

// SlotDecision holds the decision code.
const SlotDecision = 0

// SlotScore holds the aggregate score (int16, two's complement).
const SlotScore = 1

// SlotExposureBefore holds the exposure value read before the correction.
const SlotExposureBefore = 2

// SlotExposureAfter holds the exposure value after the correction.
const SlotExposureAfter = 3

// SlotFlags holds the Flag* bits.
const SlotFlags = 4

// SlotInvalidFields holds the number of fields whose transaction failed.
const SlotInvalidFields = 5

// SlotLastErrorCode holds the last errno-domain error code.
const SlotLastErrorCode = 6

// Slot 7 is reserved.
const SlotReserved = 7

// ---- RAW SAMPLES ----

// SlotSamplesStart is the first of one register per field:
// left part in the high byte, right part in the low byte.
const SlotSamplesStart = 8

// SlotSamplesSlots is the number of sample registers.
const SlotSamplesSlots = 8

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
// Device name is always placed at the END of the status block.
const SlotDeviceNameStart = SlotSamplesStart + SlotSamplesSlots

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// DeviceNameMaxChars is the maximum number of ASCII characters stored for device name.
const DeviceNameMaxChars = 16

// ---- FLAGS ----

const (
	FlagManualSwitched uint16 = 1 << 0
	FlagStrict         uint16 = 1 << 1
	FlagDryRun         uint16 = 1 << 2
)

// ---- DECISION CODES ----

const (
	DecisionUnknown uint16 = 0
	DecisionUnder   uint16 = 1
	DecisionOk      uint16 = 2
	DecisionOver    uint16 = 3
)

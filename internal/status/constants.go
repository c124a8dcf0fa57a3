// internal/status/constants.go
package status

// Timer Status Block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of logical slots per timer.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

// SlotPhase holds the last reported phase code.
const SlotPhase = 0

// SlotCapturing is 1 while the capture gate is open, 0 while paused.
const SlotCapturing = 1

// SlotReadings counts received display values (wraps at 65535).
const SlotReadings = 2

// SlotElapsedHi / SlotElapsedLo hold the displayed time in milliseconds.
const SlotElapsedHi = 3
const SlotElapsedLo = 4

// ---- DISPLAY ----

// SlotDisplayStart is the first slot of the raw display digits.
const SlotDisplayStart = 5

// SlotDisplaySlots holds 6 ASCII digits, two per register.
const SlotDisplaySlots = 3

// ---- RESERVED RANGE ----

// Slots 8–10 are reserved for future use.
const SlotReservedStart = 8
const SlotReservedEnd = 10

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
const SlotDeviceNameStart = 11

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last slot used for the device name (inclusive).
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for device name.
const DeviceNameMaxChars = 16

// ---- PHASE CODES ----

// PhaseNone means no phase has been reported yet.
const PhaseNone uint16 = 0

// PhaseZero: timer idle at 0:00.000.
const PhaseZero uint16 = 1

// PhaseReset: display just returned to zero.
const PhaseReset uint16 = 2

// PhaseStarting: first non-zero value after zero.
const PhaseStarting uint16 = 3

// PhaseRunning: display is counting.
const PhaseRunning uint16 = 4

// PhaseStopped: display is frozen on a non-zero time.
const PhaseStopped uint16 = 5

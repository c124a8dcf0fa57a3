// internal/status/encode.go
package status

// Encode converts a Snapshot into the live part of a status block.
// The device name slots are left zero; see EncodeDeviceName.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerDevice)

	regs[SlotPhase] = s.Phase
	if s.Capturing {
		regs[SlotCapturing] = 1
	}
	regs[SlotReadings] = s.Readings

	if s.Display.Valid() {
		ms := uint32(s.Display.Elapsed().Milliseconds())
		regs[SlotElapsedHi] = uint16(ms >> 16)
		regs[SlotElapsedLo] = uint16(ms)
	}

	for i := 0; i < SlotDisplaySlots; i++ {
		regs[SlotDisplayStart+i] = uint16(s.Display[2*i])<<8 | uint16(s.Display[2*i+1])
	}

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

// EncodeFull is Encode with the device name filled in.
func EncodeFull(s Snapshot, name []uint16) []uint16 {
	regs := Encode(s)
	copy(regs[SlotDeviceNameStart:SlotDeviceNameEnd+1], name)
	return regs
}

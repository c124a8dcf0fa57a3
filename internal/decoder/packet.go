// internal/decoder/packet.go
package decoder

// Frame geometry. These values define the protocol and MUST NOT be configurable.
const (
	// BaudRate is the fixed line rate of the timer.
	BaudRate = 1200

	// PacketBytes is the number of bytes in one frame.
	PacketBytes = 9

	// SlotBits is the width of one byte slot in bit periods:
	// 8 data bits, then stop and the next start bit.
	SlotBits = 10

	// DataBits is the number of data bits per slot, LSB first.
	DataBits = 8

	// MinPacketBits is the shortest recovered stream that holds a full packet.
	// The last slot only needs its data bits.
	MinPacketBits = PacketBytes*SlotBits - 2
)

// Packet is one decoded frame.
// Only the display window is validated; the other bytes are passed through as-is.
type Packet [PacketBytes]byte

// ExtractPacket slices a recovered bit stream into byte slots.
// The stream must start at the first data bit of slot 0 (the leading start bit
// already dropped). Stop/start positions are skipped, not checked.
//
// Returns false if the stream is too short; missing bits are never zero-filled.
func ExtractPacket(bits []Bit) (Packet, bool) {
	var p Packet
	if len(bits) < MinPacketBits {
		return p, false
	}

	for k := 0; k < PacketBytes; k++ {
		p[k] = decodeSlot(bits, k*SlotBits)
	}
	return p, true
}

func decodeSlot(bits []Bit, offset int) byte {
	var v byte
	for i := 0; i < DataBits; i++ {
		v |= byte(bits[offset+i]) << i
	}
	return v
}

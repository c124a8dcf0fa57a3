// internal/synth/synth.go
//
// Package synth builds the audio a timer would emit for a given display value.
// It is the inverse of the decoder and is used for bench tests and test WAVs.
package synth

import (
	"math"

	"github.com/tamzrod/stackmat-replicator/internal/decoder"
)

// Status bytes the timer puts in front of the display digits.
const (
	StatusIdle     byte = 'I'
	StatusRunning  byte = ' '
	StatusStopped  byte = 'S'
	StatusReady    byte = 'A'
	StatusLeftHand byte = 'L'
)

// DefaultIdleBits is the idle (Mark) gap placed before and after each frame.
// It must exceed the decoder's 9-period idle threshold.
const DefaultIdleBits = 20

// Frame builds the packet for one display value:
// status, six digits, checksum (64 + sum of digits), line feed.
func Frame(status byte, v decoder.DisplayValue) decoder.Packet {
	var p decoder.Packet

	p[0] = status
	copy(p[1:1+decoder.DisplayDigits], v[:])

	sum := 64
	for _, c := range v {
		sum += int(c - '0')
	}
	p[7] = byte(sum)
	p[8] = '\n'

	return p
}

// Bits lays a packet out on the line: idle marks, then per byte a start
// bit, eight data bits LSB first and a stop bit, then trailing idle marks.
func Bits(p decoder.Packet, leadIdle, trailIdle int) []decoder.Bit {
	out := make([]decoder.Bit, 0, leadIdle+len(p)*decoder.SlotBits+trailIdle)

	out = appendMarks(out, leadIdle)
	for _, b := range p {
		out = append(out, decoder.Space)
		for i := 0; i < decoder.DataBits; i++ {
			out = append(out, decoder.Bit((b>>i)&1))
		}
		out = append(out, decoder.Mark)
	}
	out = appendMarks(out, trailIdle)

	return out
}

// Modulate turns bits into a square wave at the protocol baud rate.
// Mark is -amplitude, Space is +amplitude. Bit i covers samples
// [floor(i*tpb), floor((i+1)*tpb)) so fractional periods do not drift.
func Modulate(bits []decoder.Bit, sampleRate float64, amplitude float32) []float32 {
	tpb := sampleRate / decoder.BaudRate
	total := int(math.Floor(float64(len(bits)) * tpb))
	out := make([]float32, total)

	for i, b := range bits {
		start := int(math.Floor(float64(i) * tpb))
		end := int(math.Floor(float64(i+1) * tpb))
		level := amplitude
		if b == decoder.Mark {
			level = -amplitude
		}
		for j := start; j < end && j < total; j++ {
			out[j] = level
		}
	}
	return out
}

// Signal renders one frame per value, each surrounded by idle gaps.
func Signal(sampleRate float64, amplitude float32, status byte, values ...decoder.DisplayValue) []float32 {
	var bits []decoder.Bit
	for _, v := range values {
		bits = append(bits, Bits(Frame(status, v), DefaultIdleBits, 0)...)
	}
	bits = appendMarks(bits, DefaultIdleBits)
	return Modulate(bits, sampleRate, amplitude)
}

func appendMarks(bits []decoder.Bit, n int) []decoder.Bit {
	for i := 0; i < n; i++ {
		bits = append(bits, decoder.Mark)
	}
	return bits
}

// internal/decoder/display.go
package decoder

import (
	"fmt"
	"time"
)

// DisplayDigits is the number of characters on the timer display.
const DisplayDigits = 6

// lastDisplayOffset is the highest start offset of the display window.
const lastDisplayOffset = PacketBytes - DisplayDigits

// DisplayValue is the timer display: exactly six ASCII digits.
type DisplayValue [DisplayDigits]byte

// Zero is the display of a reset timer.
var Zero = DisplayValue{'0', '0', '0', '0', '0', '0'}

// ParseDisplayValue accepts exactly six ASCII digits.
func ParseDisplayValue(s string) (DisplayValue, error) {
	var v DisplayValue
	if len(s) != DisplayDigits {
		return v, fmt.Errorf("display value %q: want %d digits, got %d", s, DisplayDigits, len(s))
	}
	for i := 0; i < DisplayDigits; i++ {
		if !isDigit(s[i]) {
			return v, fmt.Errorf("display value %q: non-digit at %d", s, i)
		}
		v[i] = s[i]
	}
	return v, nil
}

// MustDisplayValue is ParseDisplayValue for constants and tests.
func MustDisplayValue(s string) DisplayValue {
	v, err := ParseDisplayValue(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v DisplayValue) String() string {
	return string(v[:])
}

// Valid reports whether every byte is an ASCII digit.
// The zero value of DisplayValue is not valid.
func (v DisplayValue) Valid() bool {
	return allDigits(v[:])
}

// IsZero reports whether v is the all-zero display.
func (v DisplayValue) IsZero() bool {
	return v == Zero
}

// Elapsed reads the display as M SS mmm (minutes, seconds, milliseconds).
// This is presentation only; the decoder never interprets the digits.
func (v DisplayValue) Elapsed() time.Duration {
	d := func(i int) time.Duration { return time.Duration(v[i] - '0') }

	minutes := d(0)
	seconds := d(1)*10 + d(2)
	millis := d(3)*100 + d(4)*10 + d(5)

	return minutes*time.Minute + seconds*time.Second + millis*time.Millisecond
}

// Format renders the display the way the timer shows it, e.g. "0:13.045".
func (v DisplayValue) Format() string {
	return fmt.Sprintf("%c:%c%c.%c%c%c", v[0], v[1], v[2], v[3], v[4], v[5])
}

// FindDisplay looks for six consecutive digit bytes at offsets 0..3.
// The first (lowest) offset wins. No match is the normal result for a
// buffer that was not cleanly synchronized.
func FindDisplay(p Packet) (DisplayValue, bool) {
	var v DisplayValue
	for o := 0; o <= lastDisplayOffset; o++ {
		if allDigits(p[o : o+DisplayDigits]) {
			copy(v[:], p[o:o+DisplayDigits])
			return v, true
		}
	}
	return v, false
}

func allDigits(b []byte) bool {
	for _, c := range b {
		if !isDigit(c) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

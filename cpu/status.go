package cpu

import (
	"strings"
)

// Status is the processor status register.
//
//	7 6 5 4 3 2 1 0
//	N V B B D I Z C
//	    2 1
type Status uint8

// Status register flags.
const (
	FLAG_CARRY             = Status(1 << 0)
	FLAG_ZERO              = Status(1 << 1)
	FLAG_INTERRUPT_DISABLE = Status(1 << 2)
	FLAG_DECIMAL           = Status(1 << 3) // Recorded, never used by arithmetic.
	FLAG_BREAK             = Status(1 << 4) // Only meaningful in a stacked image.
	FLAG_BREAK2            = Status(1 << 5) // Only meaningful in a stacked image.
	FLAG_OVERFLOW          = Status(1 << 6)
	FLAG_NEGATIVE          = Status(1 << 7)
)

// STATUS_RESET is the status register value after a reset.
const STATUS_RESET = FLAG_INTERRUPT_DISABLE | FLAG_BREAK2

// Test returns true if every bit of flag is set.
func (sr Status) Test(flag Status) bool {
	return sr&flag == flag
}

// Set sets or clears flag.
func (sr *Status) Set(flag Status, on bool) {
	if on {
		*sr |= flag
	} else {
		*sr &^= flag
	}
}

// Load replaces the register with a raw byte.
func (sr *Status) Load(value uint8) {
	*sr = Status(value)
}

// Value returns the register as a raw byte.
func (sr Status) Value() uint8 {
	return uint8(sr)
}

// UpdateZeroNegative recomputes the zero and negative flags from result.
//
// Every data producing instruction routes through here.
func (sr *Status) UpdateZeroNegative(result uint8) {
	sr.Set(FLAG_ZERO, result == 0)
	sr.Set(FLAG_NEGATIVE, result&0x80 != 0)
}

// UpdateBitTest applies the flag effect of BIT: zero from mask AND operand,
// negative and overflow copied from bits 7 and 6 of operand.
func (sr *Status) UpdateBitTest(mask uint8, operand uint8) {
	sr.Set(FLAG_ZERO, mask&operand == 0)
	sr.Set(FLAG_NEGATIVE, operand&0x80 != 0)
	sr.Set(FLAG_OVERFLOW, operand&0x40 != 0)
}

// PushImage returns the byte pushed by PHP: both break bits forced on.
func PushImage(sr Status) uint8 {
	return uint8(sr | FLAG_BREAK | FLAG_BREAK2)
}

// PullImage returns the status restored by PLP and RTI: break cleared,
// break2 forced on.
func PullImage(value uint8) Status {
	return (Status(value) &^ FLAG_BREAK) | FLAG_BREAK2
}

// String returns the flags as letters, upper case when set.
func (sr Status) String() string {
	s := strings.Builder{}

	for n, ch := range "NVBBDIZC" {
		flag := Status(0x80 >> n)
		if !sr.Test(flag) {
			ch += 'a' - 'A'
		}
		s.WriteRune(ch)
	}

	return s.String()
}

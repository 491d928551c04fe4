package cpu

// Pure 8-bit arithmetic. None of these touch CPU state; handlers apply the
// results to registers and flags.

// Overflow returns true if adding to a gave a result whose sign disagrees
// with both inputs.
func Overflow(a uint8, operand uint8, result uint8) bool {
	return (operand^result)&(result^a)&0x80 != 0
}

// AddWithCarry returns a + operand + carry, modulo 256, with the carry out
// of bit 7 and the signed overflow.
func AddWithCarry(a uint8, operand uint8, carry bool) (result uint8, carryOut bool, overflow bool) {
	sum := uint16(a) + uint16(operand)
	if carry {
		sum++
	}

	result = uint8(sum)
	carryOut = sum > 0xff
	overflow = Overflow(a, operand, result)
	return
}

// SubtractWithCarry returns a - operand - !carry as an AddWithCarry of the
// operand's one's complement.
func SubtractWithCarry(a uint8, operand uint8, carry bool) (result uint8, carryOut bool, overflow bool) {
	return AddWithCarry(a, uint8(-int8(operand)-1), carry)
}

// Compare returns reg - operand, modulo 256, and the carry (no borrow).
func Compare(reg uint8, operand uint8) (difference uint8, carry bool) {
	return reg - operand, reg >= operand
}

// ShiftLeft returns value << 1 and the bit shifted out.
func ShiftLeft(value uint8) (result uint8, carry bool) {
	return value << 1, value&0x80 != 0
}

// ShiftRight returns value >> 1 and the bit shifted out.
func ShiftRight(value uint8) (result uint8, carry bool) {
	return value >> 1, value&0x01 != 0
}

// RotateLeft shifts left, filling bit 0 with the incoming carry.
func RotateLeft(value uint8, carry bool) (result uint8, carryOut bool) {
	result, carryOut = ShiftLeft(value)
	if carry {
		result |= 0x01
	}
	return
}

// RotateRight shifts right, filling bit 7 with the incoming carry.
func RotateRight(value uint8, carry bool) (result uint8, carryOut bool) {
	result, carryOut = ShiftRight(value)
	if carry {
		result |= 0x80
	}
	return
}

// Branch returns the target of a relative branch whose displacement byte is
// at pc. The displacement is signed and relative to the following byte.
func Branch(pc uint16, displacement uint8) uint16 {
	return pc + 1 + uint16(int16(int8(displacement)))
}

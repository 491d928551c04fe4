package cpu

const (
	STACK_BASE  = 0x0100 // Stack page.
	STACK_RESET = 0xfd   // Stack pointer after a reset.
)

// Push writes a byte at the stack pointer, then decrements it.
// The pointer wraps within the stack page.
func (cpu *Cpu) Push(value uint8) {
	cpu.Mem.Write(STACK_BASE+uint16(cpu.Sp), value)
	cpu.Sp--
}

// Pop increments the stack pointer, then reads the byte there.
func (cpu *Cpu) Pop() (value uint8) {
	cpu.Sp++
	return cpu.Mem.Read(STACK_BASE + uint16(cpu.Sp))
}

// Peek reads the byte Pop would return, without moving the stack pointer.
func (cpu *Cpu) Peek() (value uint8) {
	return cpu.Mem.Read(STACK_BASE + uint16(cpu.Sp+1))
}

// Push16 pushes a word, high byte first.
func (cpu *Cpu) Push16(value uint16) {
	cpu.Push(uint8(value >> 8))
	cpu.Push(uint8(value & 0xff))
}

// Pop16 pops a word pushed by Push16.
func (cpu *Cpu) Pop16() (value uint16) {
	lo := uint16(cpu.Pop())
	hi := uint16(cpu.Pop())

	return (hi << 8) | lo
}

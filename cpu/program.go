package cpu

import (
	"iter"
)

// Program is a raw image and the address it loads at.
type Program struct {
	Base  uint16
	Image []byte
}

// Debug describes the instruction at an address of a program.
type Debug struct {
	*Opcode
	Pc      uint16
	Operand []byte
}

// Debug decodes the instruction at pc. Opcode is nil if pc is outside the
// image or the byte has no dispatch table entry.
func (prog *Program) Debug(pc uint16) (dbg Debug) {
	dbg.Pc = pc

	offset := int(pc) - int(prog.Base)
	if offset < 0 || offset >= len(prog.Image) {
		return
	}

	op, ok := Lookup(prog.Image[offset])
	if !ok {
		return
	}

	dbg.Opcode = op
	end := min(offset+op.Bytes, len(prog.Image))
	dbg.Operand = prog.Image[offset+1 : end]

	return
}

// Codes iterates over the (address, byte) pairs of the image.
func (prog *Program) Codes() iter.Seq2[uint16, uint8] {
	return func(yield func(addr uint16, code uint8) bool) {
		for n, code := range prog.Image {
			if !yield(prog.Base+uint16(n), code) {
				return
			}
		}
	}
}

// Load the program into the CPU's memory and point the reset vector at it.
func (prog *Program) Load(cpu *Cpu) (err error) {
	return cpu.Load(prog.Image, prog.Base)
}

package cpu

import (
	"github.com/ezrec/m6502/memory"
)

// OperandAddress returns the effective address for mode. The program counter
// must point at the first operand byte.
//
// Zero page indexing and zero page pointers wrap within page zero; absolute
// indexing wraps at 16 bits. MODE_NONE has no address and is an error.
func (cpu *Cpu) OperandAddress(mode AddressingMode) (addr uint16, err error) {
	mem := cpu.Mem
	pc := cpu.Pc

	switch mode {
	case MODE_IMMEDIATE:
		addr = pc
	case MODE_ZERO_PAGE:
		addr = uint16(mem.Read(pc))
	case MODE_ZERO_PAGE_X:
		addr = uint16(mem.Read(pc) + cpu.X)
	case MODE_ZERO_PAGE_Y:
		addr = uint16(mem.Read(pc) + cpu.Y)
	case MODE_ABSOLUTE:
		addr = memory.Read16(mem, pc)
	case MODE_ABSOLUTE_X:
		addr = memory.Read16(mem, pc) + uint16(cpu.X)
	case MODE_ABSOLUTE_Y:
		addr = memory.Read16(mem, pc) + uint16(cpu.Y)
	case MODE_INDIRECT_X:
		ptr := mem.Read(pc) + cpu.X
		addr = memory.Read16Page(mem, uint16(ptr))
	case MODE_INDIRECT_Y:
		ptr := mem.Read(pc)
		addr = memory.Read16Page(mem, uint16(ptr)) + uint16(cpu.Y)
	default:
		err = ErrAddressingMode{Mode: mode, Pc: pc}
	}

	return
}

// indirectTarget returns the target of JMP (ind) whose pointer is at the
// program counter.
//
// A pointer at the last byte of a page takes its high byte from the start of
// the same page, as the NMOS part does.
func (cpu *Cpu) indirectTarget() uint16 {
	ptr := memory.Read16(cpu.Mem, cpu.Pc)

	return memory.Read16Page(cpu.Mem, ptr)
}

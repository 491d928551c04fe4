package cpu

// Execute performs the effect of op. The opcode byte must already have been
// consumed, leaving the program counter at the first operand byte.
//
// Execute does not skip the operand bytes; Tick does that unless
// cpu.Last.Redirected is set. BRK returns ErrBreak.
func (cpu *Cpu) Execute(op *Opcode) (err error) {
	mode := op.Mode
	cpu.Last.Redirected = false

	switch op.Operation {
	// Load, store and transfer.
	case OP_LDA:
		err = cpu.load(mode, &cpu.A)
	case OP_LDX:
		err = cpu.load(mode, &cpu.X)
	case OP_LDY:
		err = cpu.load(mode, &cpu.Y)
	case OP_STA:
		err = cpu.store(mode, cpu.A)
	case OP_STX:
		err = cpu.store(mode, cpu.X)
	case OP_STY:
		err = cpu.store(mode, cpu.Y)
	case OP_TAX:
		cpu.setRegister(&cpu.X, cpu.A)
	case OP_TAY:
		cpu.setRegister(&cpu.Y, cpu.A)
	case OP_TXA:
		cpu.setRegister(&cpu.A, cpu.X)
	case OP_TYA:
		cpu.setRegister(&cpu.A, cpu.Y)
	case OP_TSX:
		cpu.setRegister(&cpu.X, cpu.Sp)
	case OP_TXS:
		cpu.Sp = cpu.X

	// Arithmetic and logic.
	case OP_ADC:
		err = cpu.add(mode, AddWithCarry)
	case OP_SBC:
		err = cpu.add(mode, SubtractWithCarry)
	case OP_AND:
		err = cpu.logic(mode, func(a, v uint8) uint8 { return a & v })
	case OP_ORA:
		err = cpu.logic(mode, func(a, v uint8) uint8 { return a | v })
	case OP_EOR:
		err = cpu.logic(mode, func(a, v uint8) uint8 { return a ^ v })
	case OP_BIT:
		var value uint8
		value, err = cpu.operand(mode)
		if err == nil {
			cpu.P.UpdateBitTest(cpu.A, value)
		}
	case OP_CMP:
		err = cpu.compare(mode, cpu.A)
	case OP_CPX:
		err = cpu.compare(mode, cpu.X)
	case OP_CPY:
		err = cpu.compare(mode, cpu.Y)

	// Shift and rotate.
	case OP_ASL:
		_, err = cpu.shift(mode, func(v uint8, _ bool) (uint8, bool) { return ShiftLeft(v) })
	case OP_LSR:
		_, err = cpu.shift(mode, func(v uint8, _ bool) (uint8, bool) { return ShiftRight(v) })
	case OP_ROL:
		_, err = cpu.shift(mode, RotateLeft)
	case OP_ROR:
		_, err = cpu.shift(mode, RotateRight)

	// Increment and decrement.
	case OP_INC:
		_, err = cpu.modify(mode, func(v uint8) uint8 { return v + 1 })
	case OP_DEC:
		_, err = cpu.modify(mode, func(v uint8) uint8 { return v - 1 })
	case OP_INX:
		cpu.setRegister(&cpu.X, cpu.X+1)
	case OP_INY:
		cpu.setRegister(&cpu.Y, cpu.Y+1)
	case OP_DEX:
		cpu.setRegister(&cpu.X, cpu.X-1)
	case OP_DEY:
		cpu.setRegister(&cpu.Y, cpu.Y-1)

	// Flags.
	case OP_CLC:
		cpu.P.Set(FLAG_CARRY, false)
	case OP_SEC:
		cpu.P.Set(FLAG_CARRY, true)
	case OP_CLI:
		cpu.P.Set(FLAG_INTERRUPT_DISABLE, false)
	case OP_SEI:
		cpu.P.Set(FLAG_INTERRUPT_DISABLE, true)
	case OP_CLD:
		cpu.P.Set(FLAG_DECIMAL, false)
	case OP_SED:
		cpu.P.Set(FLAG_DECIMAL, true)
	case OP_CLV:
		cpu.P.Set(FLAG_OVERFLOW, false)

	// Branches.
	case OP_BCC:
		cpu.branch(!cpu.P.Test(FLAG_CARRY))
	case OP_BCS:
		cpu.branch(cpu.P.Test(FLAG_CARRY))
	case OP_BNE:
		cpu.branch(!cpu.P.Test(FLAG_ZERO))
	case OP_BEQ:
		cpu.branch(cpu.P.Test(FLAG_ZERO))
	case OP_BPL:
		cpu.branch(!cpu.P.Test(FLAG_NEGATIVE))
	case OP_BMI:
		cpu.branch(cpu.P.Test(FLAG_NEGATIVE))
	case OP_BVC:
		cpu.branch(!cpu.P.Test(FLAG_OVERFLOW))
	case OP_BVS:
		cpu.branch(cpu.P.Test(FLAG_OVERFLOW))

	// Jumps and subroutines.
	case OP_JMP:
		var addr uint16
		addr, err = cpu.OperandAddress(mode)
		if err == nil {
			cpu.jump(addr)
		}
	case OP_JMP_INDIRECT:
		cpu.jump(cpu.indirectTarget())
	case OP_JSR:
		var addr uint16
		addr, err = cpu.OperandAddress(mode)
		if err == nil {
			// Return address minus one: the last byte of the JSR.
			cpu.Push16(cpu.Pc + 2 - 1)
			cpu.jump(addr)
		}
	case OP_RTS:
		cpu.jump(cpu.Pop16() + 1)
	case OP_RTI:
		cpu.P = PullImage(cpu.Pop())
		cpu.jump(cpu.Pop16())

	// Stack.
	case OP_PHA:
		cpu.Push(cpu.A)
	case OP_PHP:
		cpu.Push(PushImage(cpu.P))
	case OP_PLA:
		cpu.setRegister(&cpu.A, cpu.Pop())
	case OP_PLP:
		cpu.P = PullImage(cpu.Pop())

	case OP_NOP:
	case OP_BRK:
		err = ErrBreak
	}

	return
}

// address resolves mode, noting the effective address in the last result.
func (cpu *Cpu) address(mode AddressingMode) (addr uint16, err error) {
	addr, err = cpu.OperandAddress(mode)
	if err != nil {
		return
	}

	cpu.Last.Address = addr
	return
}

// operand reads the value at the effective address of mode.
func (cpu *Cpu) operand(mode AddressingMode) (value uint8, err error) {
	addr, err := cpu.address(mode)
	if err != nil {
		return
	}

	value = cpu.Mem.Read(addr)
	return
}

// setRegister loads a register and recomputes zero and negative from it.
func (cpu *Cpu) setRegister(reg *uint8, value uint8) {
	*reg = value
	cpu.P.UpdateZeroNegative(value)
	cpu.Last.Value = value
}

func (cpu *Cpu) load(mode AddressingMode, reg *uint8) (err error) {
	value, err := cpu.operand(mode)
	if err != nil {
		return
	}

	cpu.setRegister(reg, value)
	return
}

func (cpu *Cpu) store(mode AddressingMode, value uint8) (err error) {
	addr, err := cpu.address(mode)
	if err != nil {
		return
	}

	cpu.Mem.Write(addr, value)
	cpu.Last.Value = value
	return
}

// add applies AddWithCarry or SubtractWithCarry to the accumulator.
func (cpu *Cpu) add(mode AddressingMode, adder func(a, operand uint8, carry bool) (uint8, bool, bool)) (err error) {
	value, err := cpu.operand(mode)
	if err != nil {
		return
	}

	result, carry, overflow := adder(cpu.A, value, cpu.P.Test(FLAG_CARRY))
	cpu.P.Set(FLAG_CARRY, carry)
	cpu.P.Set(FLAG_OVERFLOW, overflow)
	cpu.setRegister(&cpu.A, result)
	return
}

func (cpu *Cpu) logic(mode AddressingMode, op func(a, value uint8) uint8) (err error) {
	value, err := cpu.operand(mode)
	if err != nil {
		return
	}

	cpu.setRegister(&cpu.A, op(cpu.A, value))
	return
}

// compare sets carry, zero and negative from reg - operand, discarding the
// difference.
func (cpu *Cpu) compare(mode AddressingMode, reg uint8) (err error) {
	value, err := cpu.operand(mode)
	if err != nil {
		return
	}

	difference, carry := Compare(reg, value)
	cpu.P.Set(FLAG_CARRY, carry)
	cpu.P.UpdateZeroNegative(difference)
	return
}

// modify performs a read-modify-write of the effective address of mode, and
// returns the value written.
func (cpu *Cpu) modify(mode AddressingMode, op func(value uint8) uint8) (value uint8, err error) {
	addr, err := cpu.address(mode)
	if err != nil {
		return
	}

	value = op(cpu.Mem.Read(addr))
	cpu.Mem.Write(addr, value)
	cpu.P.UpdateZeroNegative(value)
	cpu.Last.Value = value
	return
}

// shift applies a shift or rotate to the accumulator (MODE_NONE) or to
// memory, and returns the new value. The carry out replaces the carry flag.
func (cpu *Cpu) shift(mode AddressingMode, shifter func(value uint8, carry bool) (uint8, bool)) (value uint8, err error) {
	op := func(v uint8) uint8 {
		result, carry := shifter(v, cpu.P.Test(FLAG_CARRY))
		cpu.P.Set(FLAG_CARRY, carry)
		return result
	}

	if mode == MODE_NONE {
		value = op(cpu.A)
		cpu.setRegister(&cpu.A, value)
		return
	}

	return cpu.modify(mode, op)
}

// branch takes a relative branch when taken is true. The displacement byte
// is at the program counter.
func (cpu *Cpu) branch(taken bool) {
	if !taken {
		return
	}

	cpu.jump(Branch(cpu.Pc, cpu.Mem.Read(cpu.Pc)))
}

// jump redirects control flow; Tick will not skip the operand bytes.
func (cpu *Cpu) jump(addr uint16) {
	cpu.Pc = addr
	cpu.Last.Address = addr
	cpu.Last.Redirected = true
}

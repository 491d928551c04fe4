package cpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/m6502/memory"
)

func FuzzCpu(f *testing.F) {
	for code := range 0x100 {
		f.Add(uint8(code), uint8(0x00), uint8(0x00), uint8(0x00), uint8(STATUS_RESET), uint8(0x10), uint8(0x02))
		f.Add(uint8(code), uint8(0x80), uint8(0xff), uint8(0x01), uint8(0xff), uint8(0xff), uint8(0xff))
	}

	f.Fuzz(func(t *testing.T, code uint8, a uint8, x uint8, y uint8, p uint8, lo uint8, hi uint8) {
		assert := assert.New(t)

		ram := &memory.Ram{}
		for n := range memory.MEMORY_SIZE {
			ram.Data[n] = uint8(n*7 + n>>8)
		}

		cpu := NewCpu(ram)
		cpu.Pc = 0x0600
		cpu.A = a
		cpu.X = x
		cpu.Y = y
		cpu.P.Load(p)
		ram.Write(0x0600, code)
		ram.Write(0x0601, lo)
		ram.Write(0x0602, hi)

		pre := *cpu

		err := cpu.Tick()

		op, ok := Lookup(code)
		code_str := fmt.Sprintf("0x%02x (%v)\npre:\n%v\npost:\n%v", code, op, pre.String(), cpu.String())

		if !ok {
			assert.ErrorIs(err, ErrOpcode{}, code_str)
			assert.True(cpu.Halted, code_str)
			assert.Equal(0, cpu.Ticks, code_str)
			return
		}

		switch {
		case op.Operation == OP_BRK:
			assert.ErrorIs(err, ErrBreak, code_str)
			assert.True(cpu.Halted, code_str)
		case err != nil:
			assert.NoError(err, code_str)
			return
		default:
			assert.False(cpu.Halted, code_str)
		}

		assert.Equal(1, cpu.Ticks, code_str)
		assert.Same(op, cpu.Last.Opcode, code_str)
		assert.Equal(uint16(0x0600), cpu.Last.Pc, code_str)

		if !cpu.Last.Redirected {
			assert.Equal(uint16(0x0600+op.Bytes), cpu.Pc, code_str)
		}

		// Data producing instructions leave zero and negative agreeing
		// with the register they wrote.
		var reg *uint8
		switch op.Operation {
		case OP_LDA, OP_TXA, OP_TYA, OP_PLA, OP_ADC, OP_SBC, OP_AND, OP_ORA, OP_EOR:
			reg = &cpu.A
		case OP_LDX, OP_TAX, OP_TSX, OP_INX, OP_DEX:
			reg = &cpu.X
		case OP_LDY, OP_TAY, OP_INY, OP_DEY:
			reg = &cpu.Y
		case OP_ASL, OP_LSR, OP_ROL, OP_ROR:
			if op.Mode == MODE_NONE {
				reg = &cpu.A
			}
		}

		if reg != nil {
			assert.Equal(*reg == 0, cpu.P.Test(FLAG_ZERO), code_str)
			assert.Equal(*reg&0x80 != 0, cpu.P.Test(FLAG_NEGATIVE), code_str)
			assert.Equal(*reg, cpu.Last.Value, code_str)
		}

		// Only stack and status instructions may touch the break bits.
		switch op.Operation {
		case OP_PLP, OP_RTI:
			assert.True(cpu.P.Test(FLAG_BREAK2), code_str)
			assert.False(cpu.P.Test(FLAG_BREAK), code_str)
		default:
			assert.Equal(pre.P&(FLAG_BREAK|FLAG_BREAK2), cpu.P&(FLAG_BREAK|FLAG_BREAK2), code_str)
		}

		if errors.Is(err, ErrBreak) {
			assert.ErrorIs(cpu.Tick(), ErrHalted, code_str)
		}
	})
}

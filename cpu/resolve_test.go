package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/m6502/memory"
)

func TestOperandAddress(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		mode    AddressingMode
		operand []uint8
		x, y    uint8
		setup   map[uint16]uint8
		addr    uint16
	}){
		{"imm", MODE_IMMEDIATE, []uint8{0x42}, 0, 0, nil, 0x0601},
		{"zp", MODE_ZERO_PAGE, []uint8{0x80}, 0x10, 0x20, nil, 0x0080},
		{"zp,x", MODE_ZERO_PAGE_X, []uint8{0x80}, 0x10, 0, nil, 0x0090},
		{"zp,x wraps", MODE_ZERO_PAGE_X, []uint8{0x80}, 0xff, 0, nil, 0x007f},
		{"zp,y wraps", MODE_ZERO_PAGE_Y, []uint8{0xf0}, 0, 0x20, nil, 0x0010},
		{"abs", MODE_ABSOLUTE, []uint8{0x34, 0x12}, 0x10, 0x20, nil, 0x1234},
		{"abs,x", MODE_ABSOLUTE_X, []uint8{0xff, 0x12}, 0x01, 0, nil, 0x1300},
		{"abs,y wraps", MODE_ABSOLUTE_Y, []uint8{0xff, 0xff}, 0, 0x02, nil, 0x0001},
		{"(zp,x)", MODE_INDIRECT_X, []uint8{0x20}, 0x04, 0,
			map[uint16]uint8{0x24: 0x74, 0x25: 0x20}, 0x2074},
		{"(zp,x) wraps pointer", MODE_INDIRECT_X, []uint8{0xff}, 0x01, 0,
			map[uint16]uint8{0x00: 0x10, 0x01: 0x30}, 0x3010},
		{"(zp,x) pointer at 0xff", MODE_INDIRECT_X, []uint8{0xfe}, 0x01, 0,
			map[uint16]uint8{0xff: 0x10, 0x00: 0x40, 0x100: 0x50}, 0x4010},
		{"(zp),y", MODE_INDIRECT_Y, []uint8{0x86}, 0, 0x10,
			map[uint16]uint8{0x86: 0x28, 0x87: 0x40}, 0x4038},
		{"(zp),y pointer at 0xff", MODE_INDIRECT_Y, []uint8{0xff}, 0, 0x01,
			map[uint16]uint8{0xff: 0x00, 0x00: 0x04, 0x100: 0x05}, 0x0401},
		{"(zp),y wraps", MODE_INDIRECT_Y, []uint8{0x10}, 0, 0x02,
			map[uint16]uint8{0x10: 0xff, 0x11: 0xff}, 0x0001},
	}

	for _, entry := range table {
		ram := &memory.Ram{}
		cpu := NewCpu(ram)
		cpu.Pc = 0x0601
		cpu.X = entry.x
		cpu.Y = entry.y
		for n, data := range entry.operand {
			ram.Write(cpu.Pc+uint16(n), data)
		}
		for addr, data := range entry.setup {
			ram.Write(addr, data)
		}

		addr, err := cpu.OperandAddress(entry.mode)
		assert.NoError(err, entry.name)
		assert.Equal(entry.addr, addr, "%v: 0x%04x", entry.name, addr)
		assert.Equal(uint16(0x0601), cpu.Pc, entry.name)
	}
}

func TestOperandAddress_None(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(&memory.Ram{})
	cpu.Pc = 0x0601

	_, err := cpu.OperandAddress(MODE_NONE)
	assert.ErrorIs(err, ErrAddressingMode{})
	assert.Equal(ErrAddressingMode{Mode: MODE_NONE, Pc: 0x0601}, err)

	_, err = cpu.OperandAddress(AddressingMode(99))
	assert.ErrorIs(err, ErrAddressingMode{})
}

func TestIndirectTarget(t *testing.T) {
	assert := assert.New(t)

	ram := &memory.Ram{}
	cpu := NewCpu(ram)
	cpu.Pc = 0x0601

	memory.Write16(ram, 0x0601, 0x3000)
	memory.Write16(ram, 0x3000, 0x1234)
	assert.Equal(uint16(0x1234), cpu.indirectTarget())

	// Pointer on the last byte of a page.
	memory.Write16(ram, 0x0601, 0x30ff)
	ram.Write(0x30ff, 0x80)
	ram.Write(0x3000, 0x50)
	ram.Write(0x3100, 0x40)
	assert.Equal(uint16(0x5080), cpu.indirectTarget())
}

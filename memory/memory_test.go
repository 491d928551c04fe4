package memory

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRam_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	ram := &Ram{}

	for _, addr := range []uint16{0x0000, 0x00ff, 0x0100, 0x0600, 0xfffc, 0xffff} {
		assert.Equal(uint8(0), ram.Read(addr))
		ram.Write(addr, uint8(addr>>8)^0x5a)
		assert.Equal(uint8(addr>>8)^0x5a, ram.Read(addr), "0x%04x", addr)
	}

	ram.Reset()
	for addr := range MEMORY_SIZE {
		if ram.Data[addr] != 0 {
			t.Fatalf("0x%04x not cleared", addr)
		}
	}
}

func TestRead16(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		addr  uint16
		setup map[uint16]uint8
		word  uint16
	}){
		{"little-endian", 0x1234, map[uint16]uint8{0x1234: 0x78, 0x1235: 0x56}, 0x5678},
		{"page-cross", 0x12ff, map[uint16]uint8{0x12ff: 0x34, 0x1300: 0x12}, 0x1234},
		{"top-of-memory", 0xffff, map[uint16]uint8{0xffff: 0xcd, 0x0000: 0xab}, 0xabcd},
	}

	for _, entry := range table {
		ram := &Ram{}
		for addr, data := range entry.setup {
			ram.Write(addr, data)
		}
		assert.Equal(entry.word, Read16(ram, entry.addr), entry.name)
	}
}

func TestWrite16(t *testing.T) {
	assert := assert.New(t)

	ram := &Ram{}

	Write16(ram, 0x0200, 0xbeef)
	assert.Equal(uint8(0xef), ram.Read(0x0200))
	assert.Equal(uint8(0xbe), ram.Read(0x0201))
	assert.Equal(uint16(0xbeef), Read16(ram, 0x0200))

	Write16(ram, 0xffff, 0x1234)
	assert.Equal(uint8(0x34), ram.Read(0xffff))
	assert.Equal(uint8(0x12), ram.Read(0x0000))
}

func TestRead16Page(t *testing.T) {
	assert := assert.New(t)

	ram := &Ram{}
	ram.Write(0x30ff, 0x80)
	ram.Write(0x3000, 0x50)
	ram.Write(0x3100, 0x40)

	assert.Equal(uint16(0x5080), Read16Page(ram, 0x30ff))
	assert.Equal(uint16(0x4080), Read16(ram, 0x30ff))

	ram.Write(0x00ff, 0x11)
	ram.Write(0x0000, 0x22)
	assert.Equal(uint16(0x2211), Read16Page(ram, 0x00ff))

	ram.Write(0x0010, 0x33)
	ram.Write(0x0011, 0x44)
	assert.Equal(uint16(0x4433), Read16Page(ram, 0x0010))
}

func TestRam_Bytes(t *testing.T) {
	assert := assert.New(t)

	ram := &Ram{}
	ram.Write(0xfffe, 1)
	ram.Write(0xffff, 2)
	ram.Write(0x0000, 3)

	got := maps.Collect(ram.Bytes(0xfffe, 3))
	assert.Equal(map[uint16]uint8{0xfffe: 1, 0xffff: 2, 0x0000: 3}, got)

	count := 0
	for range ram.Bytes(0, 16) {
		count++
		if count == 4 {
			break
		}
	}
	assert.Equal(4, count)
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defs := maps.Collect(Defines())
	assert.Equal("0x10000", defs["MEMORY_SIZE"])
	assert.Equal("0x100", defs["PAGE_SIZE"])
}

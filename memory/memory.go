// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory provides the byte addressable store driven by the 6502 core.
//
// The core only ever sees the Memory interface. Bank switching, mirroring and
// memory mapped peripherals belong to whatever bus implements it; Ram is the
// flat 64KiB array used when there is no such bus.
package memory

import (
	"iter"

	"github.com/ezrec/m6502/internal"
)

const (
	MEMORY_SIZE = 0x10000 // Bytes addressable with a 16-bit address.
	PAGE_SIZE   = 0x100   // Bytes per page.
)

// Memory is a 16-bit addressed byte store.
//
// Every address is valid. Implementations must not fail.
type Memory interface {
	// Read a byte.
	Read(addr uint16) (data uint8)
	// Write a byte.
	Write(addr uint16, data uint8)
}

// Defines for the memory layout.
func Defines() iter.Seq2[string, string] {
	return internal.Defines(map[string]int{
		"MEMORY_SIZE": MEMORY_SIZE,
		"PAGE_SIZE":   PAGE_SIZE,
	})
}

// Read16 reads a little-endian word.
//
// The high byte is read from addr+1 with 16-bit wraparound, so a word at
// 0xFFFF takes its high byte from 0x0000.
func Read16(mem Memory, addr uint16) (data uint16) {
	lo := uint16(mem.Read(addr))
	hi := uint16(mem.Read(addr + 1))

	return (hi << 8) | lo
}

// Write16 writes a little-endian word, wrapping like Read16.
func Write16(mem Memory, addr uint16, data uint16) {
	mem.Write(addr, uint8(data&0xff))
	mem.Write(addr+1, uint8(data>>8))
}

// Read16Page reads a little-endian word whose high byte is fetched from the
// same page as the low byte, ie 0x12FF reads its high byte from 0x1200.
func Read16Page(mem Memory, addr uint16) (data uint16) {
	hiAddr := (addr & 0xff00) | uint16(uint8(addr)+1)

	lo := uint16(mem.Read(addr))
	hi := uint16(mem.Read(hiAddr))

	return (hi << 8) | lo
}

// Ram is a flat, unbanked 64KiB memory.
type Ram struct {
	Data [MEMORY_SIZE]uint8
}

var _ Memory = (*Ram)(nil)

// Read a byte.
func (ram *Ram) Read(addr uint16) uint8 {
	return ram.Data[addr]
}

// Write a byte.
func (ram *Ram) Write(addr uint16, data uint8) {
	ram.Data[addr] = data
}

// Reset clears the memory to zero.
func (ram *Ram) Reset() {
	clear(ram.Data[:])
}

// Bytes returns an iterator over (address, data) of length bytes starting
// at base, wrapping at the top of memory.
func (ram *Ram) Bytes(base uint16, length int) iter.Seq2[uint16, uint8] {
	return func(yield func(addr uint16, data uint8) bool) {
		for n := range length {
			addr := base + uint16(n)
			if !yield(addr, ram.Data[addr]) {
				return
			}
		}
	}
}

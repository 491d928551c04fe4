// Package cpu implements the instruction execution core of a 6502 class
// microprocessor.
//
// The CPU consists of three 8-bit registers (A, X, Y), an 8-bit stack pointer
// into page one, a 16-bit program counter, and a status register of six
// architectural flags. Decimal mode is recorded but never alters arithmetic.
//
// Memory is supplied by the caller through the memory.Memory interface. The
// core never performs I/O or timing; it fetches, decodes and executes one
// instruction per Tick, then reports the retired instruction to its Observer.
package cpu

// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"iter"
	"log"

	"github.com/ezrec/m6502/cpu"
	"github.com/ezrec/m6502/internal"
	"github.com/ezrec/m6502/memory"
)

const (
	PROGRAM_BASE = 0x0600 // Default load address of a program image.
)

var _emulator_defines = map[string]int{
	"PROGRAM_BASE": PROGRAM_BASE,
}

// Emulator state. CPU + RAM + the loaded program.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Ram      *memory.Ram  // Flat memory the CPU executes from.
	Program  *cpu.Program // Reference to the currently loaded program image.
}

// NewEmulator creates a new emulator with cleared memory.
func NewEmulator() (emu *Emulator) {
	ram := &memory.Ram{}

	emu = &Emulator{
		Cpu:     cpu.NewCpu(ram),
		Ram:     ram,
		Program: &cpu.Program{Base: PROGRAM_BASE},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(internal.Defines(_emulator_defines),
		emu.Cpu.Defines(),
		memory.Defines(),
	)
}

// Load copies program into memory at PROGRAM_BASE.
func (emu *Emulator) Load(program []byte) (err error) {
	return emu.LoadAt(program, PROGRAM_BASE)
}

// LoadAt copies program into memory at base.
func (emu *Emulator) LoadAt(program []byte, base uint16) (err error) {
	emu.Program = &cpu.Program{Base: base, Image: program}

	emu.Cpu.Verbose = emu.Verbose
	err = emu.Program.Load(emu.Cpu)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d bytes at 0x%04x", len(program), base)
	}

	return
}

// Reset the CPU from the reset vector.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	return emu.Cpu.Reset()
}

// Debug describes the instruction at the current program counter.
func (emu *Emulator) Debug() cpu.Debug {
	return emu.Program.Debug(emu.Cpu.Pc)
}

// Tick performs a single instruction of the emulator.
//
// done is set when the program executed BRK, or an observer asked to stop.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrBreak) || errors.Is(err, cpu.ErrStop) {
		err = nil
		done = true
	}

	return
}

// Run ticks until done, or an error.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// LoadAndRun loads program at PROGRAM_BASE, resets, and runs it.
func (emu *Emulator) LoadAndRun(program []byte) (err error) {
	err = emu.Load(program)
	if err != nil {
		return
	}

	err = emu.Reset()
	if err != nil {
		return
	}

	return emu.Run()
}

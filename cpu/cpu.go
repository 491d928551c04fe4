// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"

	"github.com/ezrec/m6502/internal"
	"github.com/ezrec/m6502/memory"
)

// RESET_VECTOR holds the address execution starts from after a reset.
const RESET_VECTOR = 0xfffc

var _cpu_defines = map[string]int{
	"RESET_VECTOR":           RESET_VECTOR,
	"STACK_BASE":             STACK_BASE,
	"STACK_RESET":            STACK_RESET,
	"STATUS_RESET":           int(STATUS_RESET),
	"FLAG_CARRY":             int(FLAG_CARRY),
	"FLAG_ZERO":              int(FLAG_ZERO),
	"FLAG_INTERRUPT_DISABLE": int(FLAG_INTERRUPT_DISABLE),
	"FLAG_DECIMAL":           int(FLAG_DECIMAL),
	"FLAG_BREAK":             int(FLAG_BREAK),
	"FLAG_BREAK2":            int(FLAG_BREAK2),
	"FLAG_OVERFLOW":          int(FLAG_OVERFLOW),
	"FLAG_NEGATIVE":          int(FLAG_NEGATIVE),
}

// Result describes the most recently retired instruction.
type Result struct {
	Pc         uint16  // Address of the opcode byte.
	Code       uint8   // Opcode byte.
	Opcode     *Opcode // Dispatch table entry.
	Address    uint16  // Effective address or jump target, if any.
	Value      uint8   // Value loaded, stored or produced, if any.
	Redirected bool    // Set if the instruction changed control flow.
}

// Cpu is the simulation context for a 6502 core.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Mem      memory.Memory // Memory the CPU executes from.
	Observer Observer      // Notified after every retired instruction.

	A  uint8  // Accumulator.
	X  uint8  // X index register.
	Y  uint8  // Y index register.
	Sp uint8  // Stack pointer, an offset into STACK_BASE.
	Pc uint16 // Program counter.
	P  Status // Status register.

	Halted bool   // Set by BRK or a fatal error; cleared by Reset.
	Ticks  int    // Instructions retired since reset.
	Last   Result // Most recently retired instruction.

	ticking bool
}

// NewCpu creates a new CPU executing from mem.
func NewCpu(mem memory.Memory) (cpu *Cpu) {
	cpu = &Cpu{
		Mem: mem,
		Sp:  STACK_RESET,
		P:   STATUS_RESET,
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return internal.Defines(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"pc", "a", "x", "y", "sp", "p", "flags", "ticks"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04X", cpu.Pc)
		case "a":
			strval = fmt.Sprintf("%02X", cpu.A)
		case "x":
			strval = fmt.Sprintf("%02X", cpu.X)
		case "y":
			strval = fmt.Sprintf("%02X", cpu.Y)
		case "sp":
			strval = fmt.Sprintf("%02X", cpu.Sp)
		case "p":
			strval = fmt.Sprintf("%02X", cpu.P.Value())
		case "flags":
			strval = cpu.P.String()
		case "ticks":
			strval = fmt.Sprintf("%d", cpu.Ticks)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Reset the CPU state.
// - Clears A, X and Y.
// - Sets the stack pointer and status register to their reset values.
// - Loads the program counter from the reset vector.
func (cpu *Cpu) Reset() (err error) {
	cpu.A = 0
	cpu.X = 0
	cpu.Y = 0
	cpu.Sp = STACK_RESET
	cpu.P = STATUS_RESET
	cpu.Pc = memory.Read16(cpu.Mem, RESET_VECTOR)

	cpu.Halted = false
	cpu.Ticks = 0
	cpu.Last = Result{}

	if cpu.Verbose {
		log.Printf("cpu: reset, pc 0x%04x", cpu.Pc)
	}

	return
}

// Load copies program verbatim into memory at base, and points the reset
// vector at it. The image is not interpreted.
func (cpu *Cpu) Load(program []byte, base uint16) (err error) {
	if int(base)+len(program) > memory.MEMORY_SIZE {
		err = ErrImageSize
		return
	}

	for n, data := range program {
		cpu.Mem.Write(base+uint16(n), data)
	}

	memory.Write16(cpu.Mem, RESET_VECTOR, base)

	if cpu.Verbose {
		log.Printf("cpu: load %d bytes at 0x%04x", len(program), base)
	}

	return
}

// Tick fetches, decodes and executes one instruction, then notifies the
// Observer.
//
// BRK retires, is observed, and returns ErrBreak. An opcode with no dispatch
// table entry returns ErrOpcode without executing. Either halts the CPU until
// the next Reset. An error returned by the Observer is returned as is.
func (cpu *Cpu) Tick() (err error) {
	if cpu.ticking {
		err = ErrReentrant
		return
	}

	if cpu.Halted {
		err = ErrHalted
		return
	}

	cpu.ticking = true
	defer func() { cpu.ticking = false }()

	pc := cpu.Pc
	code := cpu.Mem.Read(pc)
	cpu.Pc++

	op, ok := Lookup(code)
	if !ok {
		cpu.Halted = true
		err = ErrOpcode{Code: code, Pc: pc}
		return
	}

	cpu.Last = Result{Pc: pc, Code: code, Opcode: op}

	err = cpu.Execute(op)
	if err != nil && !errors.Is(err, ErrBreak) {
		cpu.Halted = true
		return
	}

	if !cpu.Last.Redirected {
		cpu.Pc += uint16(op.Bytes - 1)
	}

	cpu.Ticks++

	if cpu.Verbose {
		log.Printf("cpu: 0x%04x %v", pc, op)
	}

	if errors.Is(err, ErrBreak) {
		cpu.Halted = true
	}

	if cpu.Observer != nil {
		oerr := cpu.Observer.Observe(cpu)
		if oerr != nil {
			err = oerr
		}
	}

	return
}

// Run ticks until the CPU halts or the Observer stops it.
//
// ErrBreak and ErrStop end the run normally and return nil. Any other error
// is returned.
func (cpu *Cpu) Run() (err error) {
	for err == nil {
		err = cpu.Tick()
	}

	if errors.Is(err, ErrBreak) || errors.Is(err, ErrStop) {
		err = nil
	}

	return
}

// RunWithObserver runs with obs notified after the CPU's own Observer.
func (cpu *Cpu) RunWithObserver(obs Observer) (err error) {
	saved := cpu.Observer
	defer func() { cpu.Observer = saved }()

	if saved != nil {
		cpu.Observer = Observers{saved, obs}
	} else {
		cpu.Observer = obs
	}

	return cpu.Run()
}

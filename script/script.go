// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script provides a cpu.Observer written in Starlark.
//
// The script must define a function step(cpu), called after every retired
// instruction. The cpu argument exposes the registers as integer attributes
// (a, x, y, sp, pc, p) that may be assigned, the last instruction (opcode,
// mnemonic, address, value), and read(addr) / write(addr, value) for memory.
// If step returns False, execution stops cleanly.
//
// Integer defines (FLAG_CARRY, RESET_VECTOR, ...) are predeclared.
package script

import (
	"errors"
	"io"
	"iter"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/m6502/cpu"
	"github.com/ezrec/m6502/internal"
)

// Observer runs a Starlark step function per retired instruction.
type Observer struct {
	Verbose bool // If set, logs each script call.

	thread *starlark.Thread
	step   starlark.Callable
}

var _ cpu.Observer = (*Observer)(nil)

// NewObserver compiles and runs the top level of a script, and binds its
// step function.
func NewObserver(name string, src io.Reader, defines iter.Seq2[string, string]) (obs *Observer, err error) {
	text, err := io.ReadAll(src)
	if err != nil {
		return
	}

	thread := &starlark.Thread{
		Name:  name,
		Print: func(_ *starlark.Thread, msg string) { log.Printf("%v: %v", name, msg) },
	}

	pred := starlark.StringDict{}
	for key, value := range internal.DefineValues(defines) {
		pred[key] = starlark.MakeInt(value)
	}

	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, thread, name, text, pred)
	if err != nil {
		err = errors.Join(ErrScript, err)
		return
	}

	step, ok := globals[STEP_FUNCTION].(starlark.Callable)
	if !ok {
		err = ErrScriptStep
		return
	}

	obs = &Observer{
		thread: thread,
		step:   step,
	}

	return
}

// Observe calls the script's step function.
func (obs *Observer) Observe(cp *cpu.Cpu) (err error) {
	value := &cpuValue{cpu: cp}

	rc, err := starlark.Call(obs.thread, obs.step, starlark.Tuple{value}, nil)
	if err != nil {
		err = errors.Join(ErrScript, err)
		return
	}

	if obs.Verbose {
		log.Printf("script: step 0x%04x -> %v", cp.Last.Pc, rc)
	}

	if rc == starlark.False {
		err = cpu.ErrStop
	}

	return
}

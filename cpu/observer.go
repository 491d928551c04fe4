package cpu

import (
	"io"

	"github.com/ezrec/m6502/translate"
)

// Observer is notified after every retired instruction.
//
// An Observer may read and modify registers and memory, but must not call
// Tick. Returning an error stops execution; ErrStop stops it cleanly.
type Observer interface {
	Observe(cpu *Cpu) error
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(cpu *Cpu) error

// Observe calls fn.
func (fn ObserverFunc) Observe(cpu *Cpu) error {
	return fn(cpu)
}

// Observers notifies each observer in order, stopping at the first error.
type Observers []Observer

// Observe notifies the observers.
func (obs Observers) Observe(cpu *Cpu) (err error) {
	for _, ob := range obs {
		if ob == nil {
			continue
		}
		err = ob.Observe(cpu)
		if err != nil {
			return
		}
	}

	return
}

// StepLimit stops execution with ErrStepLimit once Limit instructions have
// been observed. A zero Limit never stops.
type StepLimit struct {
	Limit int // Maximum instructions to observe.
	Count int // Instructions observed.
}

// Observe counts an instruction.
func (sl *StepLimit) Observe(cpu *Cpu) (err error) {
	sl.Count++
	if sl.Limit > 0 && sl.Count >= sl.Limit {
		err = ErrStepLimit
	}

	return
}

// Tracer writes one line per retired instruction.
type Tracer struct {
	Output io.Writer
}

// Observe writes the trace line of the last instruction, with the register
// state after it retired.
func (tr *Tracer) Observe(cpu *Cpu) (err error) {
	last := &cpu.Last

	var mnemonic string
	if last.Opcode != nil {
		mnemonic = last.Opcode.String()
	}

	_, err = translate.Fprintf(tr.Output, "%04X  %02X  %-12s A:%02X X:%02X Y:%02X P:%02X SP:%02X\n",
		last.Pc, last.Code, mnemonic, cpu.A, cpu.X, cpu.Y, cpu.P.Value(), cpu.Sp)
	return
}

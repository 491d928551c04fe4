package cpu

import (
	"errors"

	"github.com/ezrec/m6502/translate"
)

var f = translate.From

var (
	// Execution loop errors
	ErrBreak     = errors.New(f("break"))
	ErrStop      = errors.New(f("stop requested"))
	ErrStepLimit = errors.New(f("step limit reached"))
	ErrReentrant = errors.New(f("tick from observer"))
	ErrHalted    = errors.New(f("cpu halted"))

	// Program load errors
	ErrImageSize = errors.New(f("image exceeds memory"))
)

// ErrOpcode is an opcode byte with no dispatch table entry.
type ErrOpcode struct {
	Code uint8  // Offending opcode byte.
	Pc   uint16 // Address the byte was fetched from.
}

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x at 0x%04x", eo.Code, eo.Pc)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrAddressingMode is an attempt to resolve an address for an addressing
// mode that has none.
type ErrAddressingMode struct {
	Mode AddressingMode // Mode that was resolved.
	Pc   uint16         // Program counter at the time of resolution.
}

func (em ErrAddressingMode) Error() string {
	return f("addressing mode %v has no operand address at 0x%04x", em.Mode, em.Pc)
}

func (em ErrAddressingMode) Is(err error) (ok bool) {
	_, ok = err.(ErrAddressingMode)
	return
}

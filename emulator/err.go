package emulator

import (
	"github.com/ezrec/m6502/translate"
)

var f = translate.From

// ErrRuntime indicates the program counter of a runtime error.
type ErrRuntime struct {
	Pc  uint16
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%04x %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

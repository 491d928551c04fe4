package script

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"

	"github.com/ezrec/m6502/cpu"
)

// cpuValue exposes a *cpu.Cpu to a script for the duration of one call.
type cpuValue struct {
	cpu *cpu.Cpu
}

var (
	_ starlark.HasAttrs    = (*cpuValue)(nil)
	_ starlark.HasSetField = (*cpuValue)(nil)
)

var cpuAttrNames = []string{
	"a", "x", "y", "sp", "pc", "p",
	"opcode", "mnemonic", "address", "value", "ticks",
	"read", "write",
}

func (cv *cpuValue) String() string {
	cp := cv.cpu
	return fmt.Sprintf("cpu(pc=0x%04x, a=0x%02x, x=0x%02x, y=0x%02x, sp=0x%02x, p=0x%02x)",
		cp.Pc, cp.A, cp.X, cp.Y, cp.Sp, cp.P.Value())
}

func (cv *cpuValue) Type() string         { return "cpu" }
func (cv *cpuValue) Freeze()              {}
func (cv *cpuValue) Truth() starlark.Bool { return starlark.True }

func (cv *cpuValue) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: %v", cv.Type())
}

func (cv *cpuValue) AttrNames() []string {
	return cpuAttrNames
}

func (cv *cpuValue) Attr(name string) (value starlark.Value, err error) {
	cp := cv.cpu
	last := &cp.Last

	switch name {
	case "a":
		value = starlark.MakeInt(int(cp.A))
	case "x":
		value = starlark.MakeInt(int(cp.X))
	case "y":
		value = starlark.MakeInt(int(cp.Y))
	case "sp":
		value = starlark.MakeInt(int(cp.Sp))
	case "pc":
		value = starlark.MakeInt(int(cp.Pc))
	case "p":
		value = starlark.MakeInt(int(cp.P.Value()))
	case "opcode":
		value = starlark.MakeInt(int(last.Code))
	case "mnemonic":
		mnemonic := ""
		if last.Opcode != nil {
			mnemonic = last.Opcode.Mnemonic
		}
		value = starlark.String(mnemonic)
	case "address":
		value = starlark.MakeInt(int(last.Address))
	case "value":
		value = starlark.MakeInt(int(last.Value))
	case "ticks":
		value = starlark.MakeInt(cp.Ticks)
	case "read":
		value = starlark.NewBuiltin("read", cv.read)
	case "write":
		value = starlark.NewBuiltin("write", cv.write)
	default:
		// nil, nil reports a missing attribute.
	}

	return
}

func (cv *cpuValue) SetField(name string, value starlark.Value) (err error) {
	cp := cv.cpu

	limit := 0xff
	if name == "pc" {
		limit = 0xffff
	}

	n, err := toInt(value, limit)
	if err != nil {
		return
	}

	switch name {
	case "a":
		cp.A = uint8(n)
	case "x":
		cp.X = uint8(n)
	case "y":
		cp.Y = uint8(n)
	case "sp":
		cp.Sp = uint8(n)
	case "pc":
		cp.Pc = uint16(n)
	case "p":
		cp.P.Load(uint8(n))
	default:
		err = ErrNoAttr(name)
	}

	return
}

// read(addr) returns the byte at addr.
func (cv *cpuValue) read(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var addr starlark.Value
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &addr)
	if err != nil {
		return
	}

	a, err := toInt(addr, 0xffff)
	if err != nil {
		return
	}

	value = starlark.MakeInt(int(cv.cpu.Mem.Read(uint16(a))))
	return
}

// write(addr, value) stores a byte at addr.
func (cv *cpuValue) write(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var addr, data starlark.Value
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &addr, &data)
	if err != nil {
		return
	}

	a, err := toInt(addr, 0xffff)
	if err != nil {
		return
	}

	d, err := toInt(data, 0xff)
	if err != nil {
		return
	}

	cv.cpu.Mem.Write(uint16(a), uint8(d))
	value = starlark.None
	return
}

// toInt converts a Starlark int in [0, limit].
func toInt(value starlark.Value, limit int) (n int, err error) {
	n, err = starlark.AsInt32(value)
	if err != nil {
		return
	}

	if n < 0 || n > limit {
		err = errors.Join(ErrScriptValue, fmt.Errorf("%d", n))
	}

	return
}

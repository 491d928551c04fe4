package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/m6502/cpu"
	"github.com/ezrec/m6502/memory"
)

// runScript loads program at 0x0600, attaches the script, and runs.
func runScript(t *testing.T, source []string, program []uint8) (cp *cpu.Cpu, ram *memory.Ram, err error) {
	ram = &memory.Ram{}
	cp = cpu.NewCpu(ram)

	obs, err := NewObserver("test.star", strings.NewReader(strings.Join(source, "\n")), cp.Defines())
	if err != nil {
		t.Fatalf("%v", err)
	}

	err = cp.Load(program, 0x0600)
	if err != nil {
		t.Fatalf("%v", err)
	}

	cp.Reset()
	cp.Observer = cpu.Observers{obs, &cpu.StepLimit{Limit: 1000}}

	err = cp.Run()
	return
}

func TestObserver_SetRegisters(t *testing.T) {
	assert := assert.New(t)

	source := []string{
		"def step(cpu):",
		"    if cpu.mnemonic == 'NOP':",
		"        cpu.x = 0x42",
		"        cpu.y = cpu.x + 1",
		"        cpu.a = 0xff",
		"        cpu.p = cpu.p | FLAG_CARRY",
	}

	cp, _, err := runScript(t, source, []uint8{0xea, 0x00})
	assert.NoError(err)
	assert.Equal(uint8(0x42), cp.X)
	assert.Equal(uint8(0x43), cp.Y)
	assert.Equal(uint8(0xff), cp.A)
	assert.True(cp.P.Test(cpu.FLAG_CARRY))
}

func TestObserver_SetPc(t *testing.T) {
	assert := assert.New(t)

	source := []string{
		"def step(cpu):",
		"    if cpu.pc == 0x601:",
		"        cpu.pc = 0x603",
	}

	cp, _, err := runScript(t, source, []uint8{0xea, 0xa2, 0x05, 0x00})
	assert.NoError(err)
	assert.Equal(uint8(0x00), cp.X)
	assert.Equal(uint16(0x0604), cp.Pc)
	assert.Equal(2, cp.Ticks)
}

func TestObserver_Stop(t *testing.T) {
	assert := assert.New(t)

	source := []string{
		"def step(cpu):",
		"    return cpu.a != 3",
	}

	cp, _, err := runScript(t, source, []uint8{0x69, 0x01, 0x4c, 0x00, 0x06})
	assert.NoError(err)
	assert.Equal(uint8(3), cp.A)
	assert.False(cp.Halted)
}

func TestObserver_None(t *testing.T) {
	assert := assert.New(t)

	source := []string{
		"def step(cpu):",
		"    pass",
	}

	cp, _, err := runScript(t, source, []uint8{0xe8, 0xe8, 0x00})
	assert.NoError(err)
	assert.Equal(uint8(2), cp.X)
	assert.True(cp.Halted)
}

func TestObserver_Memory(t *testing.T) {
	assert := assert.New(t)

	source := []string{
		"def step(cpu):",
		"    if cpu.mnemonic == 'LDA':",
		"        cpu.write(0x300, cpu.address & 0xff)",
		"        cpu.write(0x301, cpu.address >> 8)",
		"        cpu.write(0x302, cpu.value)",
		"        cpu.write(0x303, cpu.read(0x0600))",
		"        cpu.write(0x304, cpu.opcode)",
		"        cpu.write(0x305, cpu.ticks)",
	}

	_, ram, err := runScript(t, source, []uint8{0xea, 0xad, 0x00, 0x06, 0x00})
	assert.NoError(err)
	assert.Equal(uint8(0x00), ram.Read(0x300))
	assert.Equal(uint8(0x06), ram.Read(0x301))
	assert.Equal(uint8(0xea), ram.Read(0x302))
	assert.Equal(uint8(0xea), ram.Read(0x303))
	assert.Equal(uint8(0xad), ram.Read(0x304))
	assert.Equal(uint8(2), ram.Read(0x305))
}

func TestObserver_Defines(t *testing.T) {
	assert := assert.New(t)

	source := []string{
		"def step(cpu):",
		"    if cpu.p & FLAG_CARRY:",
		"        cpu.write(STACK_BASE, RESET_VECTOR & 0xff)",
	}

	_, ram, err := runScript(t, source, []uint8{0x38, 0x00})
	assert.NoError(err)
	assert.Equal(uint8(0xfc), ram.Read(0x0100))
}

func TestObserver_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source []string
		text   string
	}){
		{"a-range", []string{"def step(cpu):", "    cpu.a = 256"}, "out of range"},
		{"pc-range", []string{"def step(cpu):", "    cpu.pc = -1"}, "out of range"},
		{"write-range", []string{"def step(cpu):", "    cpu.write(0x10000, 0)"}, "out of range"},
		{"read-only", []string{"def step(cpu):", "    cpu.ticks = 0"}, "no writable attribute ticks"},
		{"fail", []string{"def step(cpu):", "    fail('nope')"}, "nope"},
	}

	for _, entry := range table {
		cp, _, err := runScript(t, entry.source, []uint8{0xea, 0xea, 0x00})
		assert.ErrorIs(err, ErrScript, entry.name)
		if assert.Error(err, entry.name) {
			assert.Contains(err.Error(), entry.text, entry.name)
		}
		assert.Equal(1, cp.Ticks, entry.name)
	}
}

func TestNewObserver(t *testing.T) {
	assert := assert.New(t)

	defines := cpu.NewCpu(&memory.Ram{}).Defines()

	_, err := NewObserver("empty.star", strings.NewReader("x = 1\n"), defines)
	assert.ErrorIs(err, ErrScriptStep)

	_, err = NewObserver("value.star", strings.NewReader("step = 1\n"), defines)
	assert.ErrorIs(err, ErrScriptStep)

	_, err = NewObserver("syntax.star", strings.NewReader("def step(cpu)\n"), defines)
	assert.ErrorIs(err, ErrScript)

	obs, err := NewObserver("ok.star", strings.NewReader("def step(cpu):\n    return True\n"), defines)
	assert.NoError(err)
	assert.NotNil(obs)
}

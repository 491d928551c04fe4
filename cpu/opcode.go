package cpu

// AddressingMode selects how an instruction finds its operand.
type AddressingMode int

//go:generate go tool stringer -linecomment -type=AddressingMode
const (
	MODE_NONE        = AddressingMode(0) // none
	MODE_IMMEDIATE   = AddressingMode(1) // imm
	MODE_ZERO_PAGE   = AddressingMode(2) // zp
	MODE_ZERO_PAGE_X = AddressingMode(3) // zp,x
	MODE_ZERO_PAGE_Y = AddressingMode(4) // zp,y
	MODE_ABSOLUTE    = AddressingMode(5) // abs
	MODE_ABSOLUTE_X  = AddressingMode(6) // abs,x
	MODE_ABSOLUTE_Y  = AddressingMode(7) // abs,y
	MODE_INDIRECT_X  = AddressingMode(8) // (zp,x)
	MODE_INDIRECT_Y  = AddressingMode(9) // (zp),y
)

// Operation is the architectural effect of an opcode, independent of its
// addressing mode.
type Operation int

const (
	OP_ADC = Operation(iota)
	OP_AND
	OP_ASL
	OP_BCC
	OP_BCS
	OP_BEQ
	OP_BIT
	OP_BMI
	OP_BNE
	OP_BPL
	OP_BRK
	OP_BVC
	OP_BVS
	OP_CLC
	OP_CLD
	OP_CLI
	OP_CLV
	OP_CMP
	OP_CPX
	OP_CPY
	OP_DEC
	OP_DEX
	OP_DEY
	OP_EOR
	OP_INC
	OP_INX
	OP_INY
	OP_JMP
	OP_JMP_INDIRECT
	OP_JSR
	OP_LDA
	OP_LDX
	OP_LDY
	OP_LSR
	OP_NOP
	OP_ORA
	OP_PHA
	OP_PHP
	OP_PLA
	OP_PLP
	OP_ROL
	OP_ROR
	OP_RTI
	OP_RTS
	OP_SBC
	OP_SEC
	OP_SED
	OP_SEI
	OP_STA
	OP_STX
	OP_STY
	OP_TAX
	OP_TAY
	OP_TSX
	OP_TXA
	OP_TXS
	OP_TYA
)

// Opcode is a dispatch table entry. Entries are never modified.
type Opcode struct {
	Operation Operation      // Effect of the instruction.
	Mode      AddressingMode // Operand addressing mode.
	Bytes     int            // Instruction length, including the opcode byte.
	Mnemonic  string         // Assembler mnemonic, for diagnostics.
}

// Opcodes is the dispatch table of the official instruction set, indexed by
// opcode byte. Unofficial opcodes have no entry.
//
// MODE_NONE covers implied and accumulator forms, branches (which read their
// own displacement) and JMP indirect (which reads its own pointer).
var Opcodes = [256]*Opcode{
	0x69: {OP_ADC, MODE_IMMEDIATE, 2, "ADC"},
	0x65: {OP_ADC, MODE_ZERO_PAGE, 2, "ADC"},
	0x75: {OP_ADC, MODE_ZERO_PAGE_X, 2, "ADC"},
	0x6d: {OP_ADC, MODE_ABSOLUTE, 3, "ADC"},
	0x7d: {OP_ADC, MODE_ABSOLUTE_X, 3, "ADC"},
	0x79: {OP_ADC, MODE_ABSOLUTE_Y, 3, "ADC"},
	0x61: {OP_ADC, MODE_INDIRECT_X, 2, "ADC"},
	0x71: {OP_ADC, MODE_INDIRECT_Y, 2, "ADC"},

	0x29: {OP_AND, MODE_IMMEDIATE, 2, "AND"},
	0x25: {OP_AND, MODE_ZERO_PAGE, 2, "AND"},
	0x35: {OP_AND, MODE_ZERO_PAGE_X, 2, "AND"},
	0x2d: {OP_AND, MODE_ABSOLUTE, 3, "AND"},
	0x3d: {OP_AND, MODE_ABSOLUTE_X, 3, "AND"},
	0x39: {OP_AND, MODE_ABSOLUTE_Y, 3, "AND"},
	0x21: {OP_AND, MODE_INDIRECT_X, 2, "AND"},
	0x31: {OP_AND, MODE_INDIRECT_Y, 2, "AND"},

	0x0a: {OP_ASL, MODE_NONE, 1, "ASL"},
	0x06: {OP_ASL, MODE_ZERO_PAGE, 2, "ASL"},
	0x16: {OP_ASL, MODE_ZERO_PAGE_X, 2, "ASL"},
	0x0e: {OP_ASL, MODE_ABSOLUTE, 3, "ASL"},
	0x1e: {OP_ASL, MODE_ABSOLUTE_X, 3, "ASL"},

	0x90: {OP_BCC, MODE_NONE, 2, "BCC"},
	0xb0: {OP_BCS, MODE_NONE, 2, "BCS"},
	0xf0: {OP_BEQ, MODE_NONE, 2, "BEQ"},
	0x30: {OP_BMI, MODE_NONE, 2, "BMI"},
	0xd0: {OP_BNE, MODE_NONE, 2, "BNE"},
	0x10: {OP_BPL, MODE_NONE, 2, "BPL"},
	0x50: {OP_BVC, MODE_NONE, 2, "BVC"},
	0x70: {OP_BVS, MODE_NONE, 2, "BVS"},

	0x24: {OP_BIT, MODE_ZERO_PAGE, 2, "BIT"},
	0x2c: {OP_BIT, MODE_ABSOLUTE, 3, "BIT"},

	0x00: {OP_BRK, MODE_NONE, 1, "BRK"},

	0x18: {OP_CLC, MODE_NONE, 1, "CLC"},
	0xd8: {OP_CLD, MODE_NONE, 1, "CLD"},
	0x58: {OP_CLI, MODE_NONE, 1, "CLI"},
	0xb8: {OP_CLV, MODE_NONE, 1, "CLV"},

	0xc9: {OP_CMP, MODE_IMMEDIATE, 2, "CMP"},
	0xc5: {OP_CMP, MODE_ZERO_PAGE, 2, "CMP"},
	0xd5: {OP_CMP, MODE_ZERO_PAGE_X, 2, "CMP"},
	0xcd: {OP_CMP, MODE_ABSOLUTE, 3, "CMP"},
	0xdd: {OP_CMP, MODE_ABSOLUTE_X, 3, "CMP"},
	0xd9: {OP_CMP, MODE_ABSOLUTE_Y, 3, "CMP"},
	0xc1: {OP_CMP, MODE_INDIRECT_X, 2, "CMP"},
	0xd1: {OP_CMP, MODE_INDIRECT_Y, 2, "CMP"},

	0xe0: {OP_CPX, MODE_IMMEDIATE, 2, "CPX"},
	0xe4: {OP_CPX, MODE_ZERO_PAGE, 2, "CPX"},
	0xec: {OP_CPX, MODE_ABSOLUTE, 3, "CPX"},

	0xc0: {OP_CPY, MODE_IMMEDIATE, 2, "CPY"},
	0xc4: {OP_CPY, MODE_ZERO_PAGE, 2, "CPY"},
	0xcc: {OP_CPY, MODE_ABSOLUTE, 3, "CPY"},

	0xc6: {OP_DEC, MODE_ZERO_PAGE, 2, "DEC"},
	0xd6: {OP_DEC, MODE_ZERO_PAGE_X, 2, "DEC"},
	0xce: {OP_DEC, MODE_ABSOLUTE, 3, "DEC"},
	0xde: {OP_DEC, MODE_ABSOLUTE_X, 3, "DEC"},

	0xca: {OP_DEX, MODE_NONE, 1, "DEX"},
	0x88: {OP_DEY, MODE_NONE, 1, "DEY"},

	0x49: {OP_EOR, MODE_IMMEDIATE, 2, "EOR"},
	0x45: {OP_EOR, MODE_ZERO_PAGE, 2, "EOR"},
	0x55: {OP_EOR, MODE_ZERO_PAGE_X, 2, "EOR"},
	0x4d: {OP_EOR, MODE_ABSOLUTE, 3, "EOR"},
	0x5d: {OP_EOR, MODE_ABSOLUTE_X, 3, "EOR"},
	0x59: {OP_EOR, MODE_ABSOLUTE_Y, 3, "EOR"},
	0x41: {OP_EOR, MODE_INDIRECT_X, 2, "EOR"},
	0x51: {OP_EOR, MODE_INDIRECT_Y, 2, "EOR"},

	0xe6: {OP_INC, MODE_ZERO_PAGE, 2, "INC"},
	0xf6: {OP_INC, MODE_ZERO_PAGE_X, 2, "INC"},
	0xee: {OP_INC, MODE_ABSOLUTE, 3, "INC"},
	0xfe: {OP_INC, MODE_ABSOLUTE_X, 3, "INC"},

	0xe8: {OP_INX, MODE_NONE, 1, "INX"},
	0xc8: {OP_INY, MODE_NONE, 1, "INY"},

	0x4c: {OP_JMP, MODE_ABSOLUTE, 3, "JMP"},
	0x6c: {OP_JMP_INDIRECT, MODE_NONE, 3, "JMP"},
	0x20: {OP_JSR, MODE_ABSOLUTE, 3, "JSR"},

	0xa9: {OP_LDA, MODE_IMMEDIATE, 2, "LDA"},
	0xa5: {OP_LDA, MODE_ZERO_PAGE, 2, "LDA"},
	0xb5: {OP_LDA, MODE_ZERO_PAGE_X, 2, "LDA"},
	0xad: {OP_LDA, MODE_ABSOLUTE, 3, "LDA"},
	0xbd: {OP_LDA, MODE_ABSOLUTE_X, 3, "LDA"},
	0xb9: {OP_LDA, MODE_ABSOLUTE_Y, 3, "LDA"},
	0xa1: {OP_LDA, MODE_INDIRECT_X, 2, "LDA"},
	0xb1: {OP_LDA, MODE_INDIRECT_Y, 2, "LDA"},

	0xa2: {OP_LDX, MODE_IMMEDIATE, 2, "LDX"},
	0xa6: {OP_LDX, MODE_ZERO_PAGE, 2, "LDX"},
	0xb6: {OP_LDX, MODE_ZERO_PAGE_Y, 2, "LDX"},
	0xae: {OP_LDX, MODE_ABSOLUTE, 3, "LDX"},
	0xbe: {OP_LDX, MODE_ABSOLUTE_Y, 3, "LDX"},

	0xa0: {OP_LDY, MODE_IMMEDIATE, 2, "LDY"},
	0xa4: {OP_LDY, MODE_ZERO_PAGE, 2, "LDY"},
	0xb4: {OP_LDY, MODE_ZERO_PAGE_X, 2, "LDY"},
	0xac: {OP_LDY, MODE_ABSOLUTE, 3, "LDY"},
	0xbc: {OP_LDY, MODE_ABSOLUTE_X, 3, "LDY"},

	0x4a: {OP_LSR, MODE_NONE, 1, "LSR"},
	0x46: {OP_LSR, MODE_ZERO_PAGE, 2, "LSR"},
	0x56: {OP_LSR, MODE_ZERO_PAGE_X, 2, "LSR"},
	0x4e: {OP_LSR, MODE_ABSOLUTE, 3, "LSR"},
	0x5e: {OP_LSR, MODE_ABSOLUTE_X, 3, "LSR"},

	0xea: {OP_NOP, MODE_NONE, 1, "NOP"},

	0x09: {OP_ORA, MODE_IMMEDIATE, 2, "ORA"},
	0x05: {OP_ORA, MODE_ZERO_PAGE, 2, "ORA"},
	0x15: {OP_ORA, MODE_ZERO_PAGE_X, 2, "ORA"},
	0x0d: {OP_ORA, MODE_ABSOLUTE, 3, "ORA"},
	0x1d: {OP_ORA, MODE_ABSOLUTE_X, 3, "ORA"},
	0x19: {OP_ORA, MODE_ABSOLUTE_Y, 3, "ORA"},
	0x01: {OP_ORA, MODE_INDIRECT_X, 2, "ORA"},
	0x11: {OP_ORA, MODE_INDIRECT_Y, 2, "ORA"},

	0x48: {OP_PHA, MODE_NONE, 1, "PHA"},
	0x08: {OP_PHP, MODE_NONE, 1, "PHP"},
	0x68: {OP_PLA, MODE_NONE, 1, "PLA"},
	0x28: {OP_PLP, MODE_NONE, 1, "PLP"},

	0x2a: {OP_ROL, MODE_NONE, 1, "ROL"},
	0x26: {OP_ROL, MODE_ZERO_PAGE, 2, "ROL"},
	0x36: {OP_ROL, MODE_ZERO_PAGE_X, 2, "ROL"},
	0x2e: {OP_ROL, MODE_ABSOLUTE, 3, "ROL"},
	0x3e: {OP_ROL, MODE_ABSOLUTE_X, 3, "ROL"},

	0x6a: {OP_ROR, MODE_NONE, 1, "ROR"},
	0x66: {OP_ROR, MODE_ZERO_PAGE, 2, "ROR"},
	0x76: {OP_ROR, MODE_ZERO_PAGE_X, 2, "ROR"},
	0x6e: {OP_ROR, MODE_ABSOLUTE, 3, "ROR"},
	0x7e: {OP_ROR, MODE_ABSOLUTE_X, 3, "ROR"},

	0x40: {OP_RTI, MODE_NONE, 1, "RTI"},
	0x60: {OP_RTS, MODE_NONE, 1, "RTS"},

	0xe9: {OP_SBC, MODE_IMMEDIATE, 2, "SBC"},
	0xe5: {OP_SBC, MODE_ZERO_PAGE, 2, "SBC"},
	0xf5: {OP_SBC, MODE_ZERO_PAGE_X, 2, "SBC"},
	0xed: {OP_SBC, MODE_ABSOLUTE, 3, "SBC"},
	0xfd: {OP_SBC, MODE_ABSOLUTE_X, 3, "SBC"},
	0xf9: {OP_SBC, MODE_ABSOLUTE_Y, 3, "SBC"},
	0xe1: {OP_SBC, MODE_INDIRECT_X, 2, "SBC"},
	0xf1: {OP_SBC, MODE_INDIRECT_Y, 2, "SBC"},

	0x38: {OP_SEC, MODE_NONE, 1, "SEC"},
	0xf8: {OP_SED, MODE_NONE, 1, "SED"},
	0x78: {OP_SEI, MODE_NONE, 1, "SEI"},

	0x85: {OP_STA, MODE_ZERO_PAGE, 2, "STA"},
	0x95: {OP_STA, MODE_ZERO_PAGE_X, 2, "STA"},
	0x8d: {OP_STA, MODE_ABSOLUTE, 3, "STA"},
	0x9d: {OP_STA, MODE_ABSOLUTE_X, 3, "STA"},
	0x99: {OP_STA, MODE_ABSOLUTE_Y, 3, "STA"},
	0x81: {OP_STA, MODE_INDIRECT_X, 2, "STA"},
	0x91: {OP_STA, MODE_INDIRECT_Y, 2, "STA"},

	0x86: {OP_STX, MODE_ZERO_PAGE, 2, "STX"},
	0x96: {OP_STX, MODE_ZERO_PAGE_Y, 2, "STX"},
	0x8e: {OP_STX, MODE_ABSOLUTE, 3, "STX"},

	0x84: {OP_STY, MODE_ZERO_PAGE, 2, "STY"},
	0x94: {OP_STY, MODE_ZERO_PAGE_X, 2, "STY"},
	0x8c: {OP_STY, MODE_ABSOLUTE, 3, "STY"},

	0xaa: {OP_TAX, MODE_NONE, 1, "TAX"},
	0xa8: {OP_TAY, MODE_NONE, 1, "TAY"},
	0xba: {OP_TSX, MODE_NONE, 1, "TSX"},
	0x8a: {OP_TXA, MODE_NONE, 1, "TXA"},
	0x9a: {OP_TXS, MODE_NONE, 1, "TXS"},
	0x98: {OP_TYA, MODE_NONE, 1, "TYA"},
}

// Lookup returns the dispatch table entry for an opcode byte.
func Lookup(code uint8) (op *Opcode, ok bool) {
	op = Opcodes[code]
	ok = op != nil
	return
}

// String returns the mnemonic and addressing mode.
func (op *Opcode) String() string {
	if op.Mode == MODE_NONE {
		return op.Mnemonic
	}

	return f("%v %v", op.Mnemonic, op.Mode)
}

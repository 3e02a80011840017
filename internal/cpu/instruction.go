package cpu

import (
	"fmt"
	"strings"
)

// Instruction is a single entry of the decode tables.
type Instruction struct {
	name   string
	cycles uint8
	length uint8
	fn     func(*CPU)
}

// Name returns the mnemonic of the instruction. Immediate
// operands are written as d8, d16, a8, a16 and e8.
func (i Instruction) Name() string {
	return i.name
}

// Cycles returns the number of clock cycles the instruction takes
// when no branch is taken. CB-prefixed instructions do not include
// the 4 cycles spent fetching the prefix.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// Length returns the size of the encoded instruction in bytes.
func (i Instruction) Length() uint8 {
	return i.length
}

// InstructionSet holds the unprefixed instructions.
var InstructionSet [256]Instruction

// InstructionSetCB holds the instructions reached through the
// 0xCB prefix.
var InstructionSetCB [256]Instruction

// DefineInstruction defines the instruction in the
// InstructionSet, with the provided opcode.
func DefineInstruction(opcode uint8, name string, cycles uint8, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{
		name:   name,
		cycles: cycles,
		length: instructionLength(name),
		fn:     fn,
	}
}

// DefineInstructionCB defines the instruction in the
// InstructionSetCB, with the provided opcode.
func DefineInstructionCB(opcode uint8, name string, cycles uint8, fn func(*CPU)) {
	InstructionSetCB[opcode] = Instruction{
		name:   name,
		cycles: cycles,
		length: 2,
		fn:     fn,
	}
}

// instructionLength derives the encoded size from the immediate
// operands named in the mnemonic.
func instructionLength(name string) uint8 {
	switch {
	case strings.Contains(name, "d16"), strings.Contains(name, "a16"):
		return 3
	case strings.Contains(name, "d8"), strings.Contains(name, "a8"), strings.Contains(name, "e8"):
		return 2
	}
	return 1
}

// unmappedOpcodes have no instruction on the SM83. Executing one
// locks up real hardware; here it is logged and treated as a NOP.
var unmappedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func unmappedOpcode(c *CPU) {
	c.log.Errorf("cpu: unmapped opcode 0x%02X at 0x%04X", c.IR, c.PC-1)
}

func init() {
	for op := 0; op < 256; op++ {
		opcode := uint8(op)
		x, y, z := opcode>>6, opcode>>3&7, opcode&7
		switch x {
		case 0:
			decodeBlock0(opcode, y, z)
		case 1:
			decodeBlock1(opcode, y, z)
		case 2:
			decodeBlock2(opcode, y, z)
		case 3:
			decodeBlock3(opcode, y, z)
		}
		decodeCB(opcode, x, y, z)
	}

	for _, opcode := range unmappedOpcodes {
		DefineInstruction(opcode, fmt.Sprintf("ILLEGAL_%02X", opcode), 4, unmappedOpcode)
	}

	// STOP is followed by a padding byte, and CB by the second opcode
	InstructionSet[0x10].length = 2
	InstructionSet[0xCB].length = 2
}

package cpu

import (
	"fmt"
	"strings"
)

// Reader reads a byte from the address space.
type Reader interface {
	Read(address uint16) uint8
}

// Disassemble decodes the instruction at pc, substituting its
// immediate operands into the mnemonic. The returned length is
// the number of bytes the instruction occupies.
func Disassemble(r Reader, pc uint16) (string, uint8) {
	opcode := r.Read(pc)
	if opcode == 0xCB {
		return InstructionSetCB[r.Read(pc+1)].name, 2
	}

	instruction := InstructionSet[opcode]
	name := instruction.name
	switch {
	case strings.Contains(name, "d16"):
		name = strings.Replace(name, "d16", fmt.Sprintf("$%04X", read16(r, pc+1)), 1)
	case strings.Contains(name, "a16"):
		name = strings.Replace(name, "a16", fmt.Sprintf("$%04X", read16(r, pc+1)), 1)
	case strings.Contains(name, "d8"):
		name = strings.Replace(name, "d8", fmt.Sprintf("$%02X", r.Read(pc+1)), 1)
	case strings.Contains(name, "a8"):
		name = strings.Replace(name, "a8", fmt.Sprintf("$FF%02X", r.Read(pc+1)), 1)
	case strings.HasPrefix(name, "JR"):
		// relative jumps are shown with their target
		target := pc + 2 + uint16(int8(r.Read(pc+1)))
		name = strings.Replace(name, "e8", fmt.Sprintf("$%04X", target), 1)
	case strings.Contains(name, "e8"):
		name = strings.Replace(name, "e8", fmt.Sprintf("%+d", int8(r.Read(pc+1))), 1)
	}

	return name, instruction.length
}

func read16(r Reader, address uint16) uint16 {
	return uint16(r.Read(address+1))<<8 | uint16(r.Read(address))
}

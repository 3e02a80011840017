package cpu

import "fmt"

// decodeCB defines the CB-prefixed opcode. The x field selects
// the operation group:
//
//	0: rotate/shift (kind in y)
//	1: BIT y, r[z]
//	2: RES y, r[z]
//	3: SET y, r[z]
//
// Cycle counts exclude the prefix fetch.
func decodeCB(opcode, x, y, z uint8) {
	switch x {
	case 0:
		rotation := rotations[y]
		DefineInstructionCB(opcode, fmt.Sprintf("%s %s", rotation.name, operandNames[z]), operandCycles(z, 4, 8), func(c *CPU) {
			c.modify(c.operand(z), func(v uint8) uint8 {
				return rotation.fn(c, v)
			})
		})
	case 1:
		DefineInstructionCB(opcode, fmt.Sprintf("BIT %d, %s", y, operandNames[z]), operandCycles(z, 4, 4), func(c *CPU) {
			c.testBit(c.load(c.operand(z)), y)
		})
	case 2:
		DefineInstructionCB(opcode, fmt.Sprintf("RES %d, %s", y, operandNames[z]), operandCycles(z, 4, 8), func(c *CPU) {
			c.modify(c.operand(z), func(v uint8) uint8 {
				return resetBit(v, y)
			})
		})
	case 3:
		DefineInstructionCB(opcode, fmt.Sprintf("SET %d, %s", y, operandNames[z]), operandCycles(z, 4, 8), func(c *CPU) {
			c.modify(c.operand(z), func(v uint8) uint8 {
				return setBit(v, y)
			})
		})
	}
}

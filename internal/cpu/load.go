package cpu

// readOperand reads the next byte of the instruction stream.
func (c *CPU) readOperand() uint8 {
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads the next two bytes of the instruction
// stream as a little-endian uint16.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

// push writes value to the stack, high byte first.
//
//	PUSH nn
//	nn = AF, BC, DE, HL
func (c *CPU) push(value uint16) {
	c.SP--
	c.bus.Write(c.SP, uint8(value>>8))
	c.SP--
	c.bus.Write(c.SP, uint8(value))
}

// pop reads a value from the stack, low byte first.
//
//	POP nn
//	nn = AF, BC, DE, HL
func (c *CPU) pop() uint16 {
	low := c.bus.Read(c.SP)
	c.SP++
	high := c.bus.Read(c.SP)
	c.SP++
	return uint16(high)<<8 | uint16(low)
}

// registerPairNames are the 16-bit register operands of the
// LD/INC/DEC/ADD instructions, indexed by bits 5-4 of the opcode.
var registerPairNames = [4]string{"BC", "DE", "HL", "SP"}

// stackPairNames are the 16-bit register operands of PUSH and POP.
var stackPairNames = [4]string{"BC", "DE", "HL", "AF"}

// registerPair returns the value of the 16-bit register
// selected by p, where 3 selects SP.
func (c *CPU) registerPair(p uint8) uint16 {
	switch p {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	default:
		return c.SP
	}
}

// setRegisterPair sets the 16-bit register selected by p, where
// 3 selects SP.
func (c *CPU) setRegisterPair(p uint8, value uint16) {
	switch p {
	case 0:
		c.BC.SetUint16(value)
	case 1:
		c.DE.SetUint16(value)
	case 2:
		c.HL.SetUint16(value)
	default:
		c.SP = value
	}
}

// stackPair returns the RegisterPair selected by p for PUSH and
// POP, where 3 selects AF.
func (c *CPU) stackPair(p uint8) *RegisterPair {
	switch p {
	case 0:
		return c.BC
	case 1:
		return c.DE
	case 2:
		return c.HL
	default:
		return c.AF
	}
}

// indirectAddress returns the address used by LD (rr), A and
// LD A, (rr), applying the HL post increment/decrement.
//
//	0: (BC), 1: (DE), 2: (HL+), 3: (HL-)
func (c *CPU) indirectAddress(p uint8) uint16 {
	switch p {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl + 1)
		return hl
	default:
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl - 1)
		return hl
	}
}

var indirectNames = [4]string{"(BC)", "(DE)", "(HL+)", "(HL-)"}

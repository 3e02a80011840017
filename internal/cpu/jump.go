package cpu

// conditionNames are the mnemonics of the 2-bit condition
// field, in encoding order.
var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

// condition evaluates the 2-bit condition field.
//
//	0: NZ, 1: Z, 2: NC, 3: C
func (c *CPU) condition(cc uint8) bool {
	switch cc & 0b11 {
	case 0:
		return !c.isFlagSet(FlagZero)
	case 1:
		return c.isFlagSet(FlagZero)
	case 2:
		return !c.isFlagSet(FlagCarry)
	default:
		return c.isFlagSet(FlagCarry)
	}
}

// jumpRelative reads a signed 8-bit offset and, if condition is
// true, adds it to PC.
//
//	JR e8
//	JR cc, e8
func (c *CPU) jumpRelative(condition bool) {
	offset := int8(c.readOperand())
	if condition {
		c.PC = uint16(int32(c.PC) + int32(offset))
		c.ticks += 4
	}
}

// jumpAbsolute reads a 16-bit address and, if condition is true,
// loads it into PC.
//
//	JP a16
//	JP cc, a16
func (c *CPU) jumpAbsolute(condition bool) {
	address := c.readOperand16()
	if condition {
		c.PC = address
		c.ticks += 4
	}
}

// call reads a 16-bit address and, if condition is true, pushes
// the address of the next instruction and jumps to it.
//
//	CALL a16
//	CALL cc, a16
func (c *CPU) call(condition bool) {
	address := c.readOperand16()
	if condition {
		c.push(c.PC)
		c.PC = address
		c.ticks += 12
	}
}

// ret pops PC from the stack if condition is true.
//
//	RET cc
func (c *CPU) ret(condition bool) {
	if condition {
		c.PC = c.pop()
		c.ticks += 12
	}
}

// rst pushes PC and jumps to one of the 8 fixed restart vectors.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) rst(vector uint16) {
	c.push(c.PC)
	c.PC = vector
}

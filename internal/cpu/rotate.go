package cpu

// rotateLeftCarry rotates n left by 1 bit. Bit 7 is copied into
// both bit 0 and the carry flag.
//
//	RLC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	result := n<<1 | n>>7
	c.setFlags(result == 0, false, false, n&0x80 != 0)
	return result
}

// rotateRightCarry rotates n right by 1 bit. Bit 0 is copied
// into both bit 7 and the carry flag.
//
//	RRC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	result := n>>1 | n<<7
	c.setFlags(result == 0, false, false, n&0x01 != 0)
	return result
}

// rotateLeftThroughCarry rotates n left through the carry flag.
//
//	RL n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	result := n<<1 | c.carryBit()
	c.setFlags(result == 0, false, false, n&0x80 != 0)
	return result
}

// rotateRightThroughCarry rotates n right through the carry flag.
//
//	RR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	result := n>>1 | c.carryBit()<<7
	c.setFlags(result == 0, false, false, n&0x01 != 0)
	return result
}

// shiftLeftArithmetic shifts n left into the carry flag. Bit 0
// is reset.
//
//	SLA n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	result := n << 1
	c.setFlags(result == 0, false, false, n&0x80 != 0)
	return result
}

// shiftRightArithmetic shifts n right into the carry flag. Bit 7
// keeps its value.
//
//	SRA n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	result := n>>1 | n&0x80
	c.setFlags(result == 0, false, false, n&0x01 != 0)
	return result
}

// shiftRightLogical shifts n right into the carry flag. Bit 7
// is reset.
//
//	SRL n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	result := n >> 1
	c.setFlags(result == 0, false, false, n&0x01 != 0)
	return result
}

// swap the upper and lower nibbles of n.
//
//	SWAP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(n uint8) uint8 {
	result := n<<4 | n>>4
	c.setFlags(result == 0, false, false, false)
	return result
}

// rotateAccumulator applies one of the rotate operations to the
// A Register, as used by RLCA, RRCA, RLA and RRA. Unlike their
// CB-prefixed counterparts the zero flag is always reset.
func (c *CPU) rotateAccumulator(rotate func(*CPU, uint8) uint8) {
	c.A = rotate(c, c.A)
	c.setFlag(FlagZero, false)
}

// rotations holds the CB-prefixed rotate and shift operations,
// indexed by bits 5-3 of the opcode.
var rotations = [8]struct {
	name string
	fn   func(*CPU, uint8) uint8
}{
	{"RLC", (*CPU).rotateLeftCarry},
	{"RRC", (*CPU).rotateRightCarry},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftArithmetic},
	{"SRA", (*CPU).shiftRightArithmetic},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).shiftRightLogical},
}

package cpu

// add adds n (and the carry flag, if withCarry is set) to the A
// Register.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	var carry uint8
	if withCarry {
		carry = c.carryBit()
	}
	sum := uint16(c.A) + uint16(n) + uint16(carry)
	halfCarry := c.A&0xF+n&0xF+carry > 0xF

	c.A = uint8(sum)
	c.setFlags(c.A == 0, false, halfCarry, sum > 0xFF)
}

// sub subtracts n (and the carry flag, if withCarry is set)
// from the A Register.
//
//	SUB n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) {
	var carry uint8
	if withCarry {
		carry = c.carryBit()
	}
	halfCarry := n&0xF+carry > c.A&0xF
	fullCarry := uint16(n)+uint16(carry) > uint16(c.A)

	c.A = c.A - n - carry
	c.setFlags(c.A == 0, true, halfCarry, fullCarry)
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare compares n to the A Register. This is a subtraction
// whose result is thrown away.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero. (Set if A = n)
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow. (Set if A < n)
func (c *CPU) compare(n uint8) {
	c.setFlags(c.A == n, true, n&0xF > c.A&0xF, n > c.A)
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	result := n + 1
	c.setFlags(result == 0, false, n&0xF == 0xF, c.isFlagSet(FlagCarry))
	return result
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	result := n - 1
	c.setFlags(result == 0, true, n&0xF == 0, c.isFlagSet(FlagCarry))
	return result
}

// addHL adds n to the HL RegisterPair.
//
//	ADD HL, n
//	n = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(n uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(n)
	c.setFlags(c.isFlagSet(FlagZero), false, hl&0xFFF+n&0xFFF > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned adds the next signed immediate to SP and returns
// the result, without modifying SP. The flags are computed from
// the unsigned addition of the low byte of SP and the operand.
//
//	ADD SP, e8
//	LD HL, SP+e8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	value := c.readOperand()
	result := c.SP + uint16(int8(value))

	c.setFlags(false, false, c.SP&0xF+uint16(value&0xF) > 0xF, c.SP&0xFF+uint16(value) > 0xFF)
	return result
}

// decimalAdjust adjusts the A Register so that the result of
// the previous BCD addition or subtraction is valid BCD.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if register A is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	subtract := c.isFlagSet(FlagSubtract)
	carry := c.isFlagSet(FlagCarry)

	var correction uint8
	if c.isFlagSet(FlagHalfCarry) || (!subtract && c.A&0xF > 0x9) {
		correction |= 0x06
	}
	if carry || (!subtract && c.A > 0x99) {
		correction |= 0x60
		carry = true
	}

	if subtract {
		c.A -= correction
	} else {
		c.A += correction
	}
	c.setFlags(c.A == 0, subtract, false, carry)
}

// complement flips every bit of the A Register.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement() {
	c.A = ^c.A
	c.setFlag(FlagSubtract, true)
	c.setFlag(FlagHalfCarry, true)
}

// setCarryFlag sets the carry flag (SCF), or complements it
// (CCF) when complement is true. N and H are always reset.
func (c *CPU) setCarryFlag(complement bool) {
	carry := true
	if complement {
		carry = !c.isFlagSet(FlagCarry)
	}
	c.setFlags(c.isFlagSet(FlagZero), false, false, carry)
}

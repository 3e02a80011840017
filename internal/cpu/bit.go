package cpu

// testBit tests bit b of value.
//
//	BIT b, r
//	b = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit b of value is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, b uint8) {
	c.setFlags(value&(1<<b) == 0, false, true, c.isFlagSet(FlagCarry))
}

// resetBit returns value with bit b cleared.
//
//	RES b, r
//
// Flags affected: none.
func resetBit(value uint8, b uint8) uint8 {
	return value &^ (1 << b)
}

// setBit returns value with bit b set.
//
//	SET b, r
//
// Flags affected: none.
func setBit(value uint8, b uint8) uint8 {
	return value | 1<<b
}

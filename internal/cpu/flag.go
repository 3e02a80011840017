package cpu

import "github.com/thelolagemann/gomeboy/internal/types"

// Flag is a bit mask into the F register.
type Flag = uint8

const (
	// FlagZero is set when the result of an operation is zero.
	FlagZero Flag = types.Bit7
	// FlagSubtract is set when the last operation was a subtraction.
	FlagSubtract Flag = types.Bit6
	// FlagHalfCarry is set on a carry from bit 3 (or bit 11 for 16-bit adds).
	FlagHalfCarry Flag = types.Bit5
	// FlagCarry is set on a carry from bit 7 (or bit 15).
	FlagCarry Flag = types.Bit4
)

// setFlags sets all four flags at once. The lower nibble of
// F is always left clear.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	var f Register
	if zero {
		f |= FlagZero
	}
	if subtract {
		f |= FlagSubtract
	}
	if halfCarry {
		f |= FlagHalfCarry
	}
	if carry {
		f |= FlagCarry
	}
	c.F = f
}

// setFlag sets or clears a single flag.
func (c *CPU) setFlag(flag Flag, value bool) {
	if value {
		c.F |= flag
	} else {
		c.F &^= flag
	}
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&flag != 0
}

// carryBit returns the carry flag as 0 or 1.
func (c *CPU) carryBit() uint8 {
	if c.isFlagSet(FlagCarry) {
		return 1
	}
	return 0
}

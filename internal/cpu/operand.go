package cpu

import "fmt"

// operandNames are the mnemonics of the 3-bit operand index,
// in encoding order.
var operandNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// operandHL is the operand index of the indirect (HL) operand.
const operandHL uint8 = 6

// operand is an instruction operand resolved once per
// instruction: either a register in the register file, or
// the memory cell addressed by HL at the time of resolution.
type operand struct {
	reg     *Register
	address uint16
}

// operand resolves the 3-bit operand index used by most of the
// instruction set.
//
//	0: B, 1: C, 2: D, 3: E, 4: H, 5: L, 6: (HL), 7: A
//
// Any other index indicates a broken decode table and panics.
func (c *CPU) operand(index uint8) operand {
	switch index {
	case 0:
		return operand{reg: &c.B}
	case 1:
		return operand{reg: &c.C}
	case 2:
		return operand{reg: &c.D}
	case 3:
		return operand{reg: &c.E}
	case 4:
		return operand{reg: &c.H}
	case 5:
		return operand{reg: &c.L}
	case 6:
		return operand{address: c.HL.Uint16()}
	case 7:
		return operand{reg: &c.A}
	}
	panic(fmt.Sprintf("invalid operand index: %d", index))
}

// load returns the current value of the operand.
func (c *CPU) load(o operand) uint8 {
	if o.reg != nil {
		return *o.reg
	}
	return c.bus.Read(o.address)
}

// store writes value to the operand.
func (c *CPU) store(o operand, value uint8) {
	if o.reg != nil {
		*o.reg = value
		return
	}
	c.bus.Write(o.address, value)
}

// modify replaces the operand's value with fn(value), in place.
func (c *CPU) modify(o operand, fn func(uint8) uint8) {
	ref := o.reg
	if ref == nil {
		ref = c.bus.Ref(o.address)
	}
	*ref = fn(*ref)
}

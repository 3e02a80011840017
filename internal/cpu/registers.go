package cpu

// Register represents a single 8-bit register.
type Register = uint8

// Registers holds the 8-bit registers of the CPU, as well
// as the 16-bit register pairs that view them.
type Registers struct {
	A Register
	F Register
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// RegisterPair combines two 8-bit registers into a single
// 16-bit register. The pair holds references to the registers
// in the register file, so a write through either view is
// immediately visible through the other.
type RegisterPair struct {
	High *Register
	Low  *Register

	lowMask uint8
}

func newRegisterPair(high, low *Register, lowMask uint8) *RegisterPair {
	return &RegisterPair{High: high, Low: low, lowMask: lowMask}
}

// Uint16 returns the value of the RegisterPair as a uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair. For AF the
// lower nibble of F is always cleared.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = Register(value >> 8)
	*r.Low = Register(value) & r.lowMask
}

// initRegisters sets up the register pairs. Must be called
// once the Registers have their final address.
func (r *Registers) initRegisters() {
	r.AF = newRegisterPair(&r.A, &r.F, 0xF0)
	r.BC = newRegisterPair(&r.B, &r.C, 0xFF)
	r.DE = newRegisterPair(&r.D, &r.E, 0xFF)
	r.HL = newRegisterPair(&r.H, &r.L, 0xFF)
}

// powerOn loads the values the DMG boot ROM leaves behind.
func (r *Registers) powerOn() {
	r.AF.SetUint16(0x01B0)
	r.BC.SetUint16(0x0013)
	r.DE.SetUint16(0x00D8)
	r.HL.SetUint16(0x014D)
}

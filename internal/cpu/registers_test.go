package cpu

import "testing"

func TestRegisterPair(t *testing.T) {
	c, _ := newTestCPU()

	c.BC.SetUint16(0x1234)
	if c.B != 0x12 || c.C != 0x34 {
		t.Errorf("expected B=0x12 C=0x34, got B=0x%02X C=0x%02X", c.B, c.C)
	}

	c.D = 0xAB
	c.E = 0xCD
	if c.DE.Uint16() != 0xABCD {
		t.Errorf("expected DE=0xABCD, got 0x%04X", c.DE.Uint16())
	}

	c.HL.SetUint16(0xFFFF)
	c.L++
	if c.HL.Uint16() != 0xFF00 {
		t.Errorf("expected HL=0xFF00, got 0x%04X", c.HL.Uint16())
	}
}

func TestRegisterPair_AF(t *testing.T) {
	c, _ := newTestCPU()
	c.AF.SetUint16(0x12FF)
	if c.A != 0x12 {
		t.Errorf("expected A=0x12, got 0x%02X", c.A)
	}
	if c.F != 0xF0 {
		t.Errorf("expected lower nibble of F to be masked, got 0x%02X", c.F)
	}
}

func TestRegisterPair_Index(t *testing.T) {
	c, _ := newTestCPU()
	for p := uint8(0); p < 4; p++ {
		c.setRegisterPair(p, 0x1000+uint16(p))
	}
	if c.BC.Uint16() != 0x1000 || c.DE.Uint16() != 0x1001 || c.HL.Uint16() != 0x1002 || c.SP != 0x1003 {
		t.Errorf("register pairs not selected in BC, DE, HL, SP order")
	}
	if c.stackPair(3) != c.AF {
		t.Errorf("expected stack pair 3 to be AF")
	}
}

func TestOperand(t *testing.T) {
	c, bus := newTestCPU()
	c.HL.SetUint16(0xC123)
	bus.Write(0xC123, 0x77)

	regs := []*Register{&c.B, &c.C, &c.D, &c.E, &c.H, &c.L, nil, &c.A}
	for i, reg := range regs {
		o := c.operand(uint8(i))
		if o.reg != reg {
			t.Errorf("operand %d (%s) resolved to the wrong register", i, operandNames[i])
		}
	}

	hl := c.operand(operandHL)
	if c.load(hl) != 0x77 {
		t.Errorf("expected (HL) to read 0x77")
	}
	c.store(hl, 0x88)
	if bus.Read(0xC123) != 0x88 {
		t.Errorf("expected (HL) store to reach the bus")
	}
	c.modify(hl, func(v uint8) uint8 { return v + 1 })
	if bus.Read(0xC123) != 0x89 {
		t.Errorf("expected (HL) modify to update in place")
	}
}

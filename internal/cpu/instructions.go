package cpu

import "fmt"

// The unprefixed opcodes are decoded from three fields:
//
//	x = bits 7-6, y = bits 5-3, z = bits 2-0
//	p = y >> 1,   q = y & 1
//
// Operands selected by y or z resolve through CPU.operand.

// aluOps are the 8 accumulator operations, indexed by y.
var aluOps = [8]struct {
	name string
	fn   func(*CPU, uint8)
}{
	{"ADD A,", func(c *CPU, n uint8) { c.add(n, false) }},
	{"ADC A,", func(c *CPU, n uint8) { c.add(n, true) }},
	{"SUB", func(c *CPU, n uint8) { c.sub(n, false) }},
	{"SBC A,", func(c *CPU, n uint8) { c.sub(n, true) }},
	{"AND", (*CPU).and},
	{"XOR", (*CPU).xor},
	{"OR", (*CPU).or},
	{"CP", (*CPU).compare},
}

// operandCycles returns base when the operand index is a register,
// and base+extra when it is (HL).
func operandCycles(index, base, extra uint8) uint8 {
	if index == operandHL {
		return base + extra
	}
	return base
}

// decodeBlock0 defines opcodes 0x00-0x3F: relative jumps, 16-bit
// loads and arithmetic, indirect loads, INC/DEC, 8-bit immediate
// loads and the accumulator/flag operations.
func decodeBlock0(opcode, y, z uint8) {
	p, q := y>>1, y&1
	switch z {
	case 0:
		switch y {
		case 0:
			DefineInstruction(opcode, "NOP", 4, func(c *CPU) {})
		case 1:
			DefineInstruction(opcode, "LD (a16), SP", 20, func(c *CPU) {
				address := c.readOperand16()
				c.bus.Write(address, uint8(c.SP))
				c.bus.Write(address+1, uint8(c.SP>>8))
			})
		case 2:
			DefineInstruction(opcode, "STOP", 4, (*CPU).stop)
		case 3:
			DefineInstruction(opcode, "JR e8", 8, func(c *CPU) { c.jumpRelative(true) })
		default:
			cc := y - 4
			DefineInstruction(opcode, fmt.Sprintf("JR %s, e8", conditionNames[cc]), 8, func(c *CPU) {
				c.jumpRelative(c.condition(cc))
			})
		}
	case 1:
		if q == 0 {
			DefineInstruction(opcode, fmt.Sprintf("LD %s, d16", registerPairNames[p]), 12, func(c *CPU) {
				c.setRegisterPair(p, c.readOperand16())
			})
		} else {
			DefineInstruction(opcode, fmt.Sprintf("ADD HL, %s", registerPairNames[p]), 8, func(c *CPU) {
				c.addHL(c.registerPair(p))
			})
		}
	case 2:
		if q == 0 {
			DefineInstruction(opcode, fmt.Sprintf("LD %s, A", indirectNames[p]), 8, func(c *CPU) {
				c.bus.Write(c.indirectAddress(p), c.A)
			})
		} else {
			DefineInstruction(opcode, fmt.Sprintf("LD A, %s", indirectNames[p]), 8, func(c *CPU) {
				c.A = c.bus.Read(c.indirectAddress(p))
			})
		}
	case 3:
		if q == 0 {
			DefineInstruction(opcode, fmt.Sprintf("INC %s", registerPairNames[p]), 8, func(c *CPU) {
				c.setRegisterPair(p, c.registerPair(p)+1)
			})
		} else {
			DefineInstruction(opcode, fmt.Sprintf("DEC %s", registerPairNames[p]), 8, func(c *CPU) {
				c.setRegisterPair(p, c.registerPair(p)-1)
			})
		}
	case 4:
		DefineInstruction(opcode, fmt.Sprintf("INC %s", operandNames[y]), operandCycles(y, 4, 8), func(c *CPU) {
			c.modify(c.operand(y), c.increment)
		})
	case 5:
		DefineInstruction(opcode, fmt.Sprintf("DEC %s", operandNames[y]), operandCycles(y, 4, 8), func(c *CPU) {
			c.modify(c.operand(y), c.decrement)
		})
	case 6:
		DefineInstruction(opcode, fmt.Sprintf("LD %s, d8", operandNames[y]), operandCycles(y, 8, 4), func(c *CPU) {
			c.store(c.operand(y), c.readOperand())
		})
	case 7:
		switch y {
		case 0:
			DefineInstruction(opcode, "RLCA", 4, func(c *CPU) { c.rotateAccumulator((*CPU).rotateLeftCarry) })
		case 1:
			DefineInstruction(opcode, "RRCA", 4, func(c *CPU) { c.rotateAccumulator((*CPU).rotateRightCarry) })
		case 2:
			DefineInstruction(opcode, "RLA", 4, func(c *CPU) { c.rotateAccumulator((*CPU).rotateLeftThroughCarry) })
		case 3:
			DefineInstruction(opcode, "RRA", 4, func(c *CPU) { c.rotateAccumulator((*CPU).rotateRightThroughCarry) })
		case 4:
			DefineInstruction(opcode, "DAA", 4, (*CPU).decimalAdjust)
		case 5:
			DefineInstruction(opcode, "CPL", 4, (*CPU).complement)
		case 6:
			DefineInstruction(opcode, "SCF", 4, func(c *CPU) { c.setCarryFlag(false) })
		case 7:
			DefineInstruction(opcode, "CCF", 4, func(c *CPU) { c.setCarryFlag(true) })
		}
	}
}

// decodeBlock1 defines opcodes 0x40-0x7F: the 8-bit register
// loads, with HALT in place of LD (HL), (HL).
func decodeBlock1(opcode, y, z uint8) {
	if y == operandHL && z == operandHL {
		DefineInstruction(opcode, "HALT", 4, (*CPU).halt)
		return
	}
	cycles := operandCycles(y, 4, 4)
	if z == operandHL {
		cycles = 8
	}
	DefineInstruction(opcode, fmt.Sprintf("LD %s, %s", operandNames[y], operandNames[z]), cycles, func(c *CPU) {
		c.store(c.operand(y), c.load(c.operand(z)))
	})
}

// decodeBlock2 defines opcodes 0x80-0xBF: the accumulator
// operations on a register or (HL).
func decodeBlock2(opcode, y, z uint8) {
	alu := aluOps[y]
	DefineInstruction(opcode, fmt.Sprintf("%s %s", alu.name, operandNames[z]), operandCycles(z, 4, 4), func(c *CPU) {
		alu.fn(c, c.load(c.operand(z)))
	})
}

// decodeBlock3 defines opcodes 0xC0-0xFF: control flow, stack
// operations, high-page loads and immediate accumulator operations.
func decodeBlock3(opcode, y, z uint8) {
	p, q := y>>1, y&1
	switch z {
	case 0:
		switch y {
		case 0, 1, 2, 3:
			DefineInstruction(opcode, fmt.Sprintf("RET %s", conditionNames[y]), 8, func(c *CPU) {
				c.ret(c.condition(y))
			})
		case 4:
			DefineInstruction(opcode, "LDH (a8), A", 12, func(c *CPU) {
				c.bus.Write(0xFF00+uint16(c.readOperand()), c.A)
			})
		case 5:
			DefineInstruction(opcode, "ADD SP, e8", 16, func(c *CPU) {
				c.SP = c.addSPSigned()
			})
		case 6:
			DefineInstruction(opcode, "LDH A, (a8)", 12, func(c *CPU) {
				c.A = c.bus.Read(0xFF00 + uint16(c.readOperand()))
			})
		case 7:
			DefineInstruction(opcode, "LD HL, SP+e8", 12, func(c *CPU) {
				c.HL.SetUint16(c.addSPSigned())
			})
		}
	case 1:
		if q == 0 {
			DefineInstruction(opcode, fmt.Sprintf("POP %s", stackPairNames[p]), 12, func(c *CPU) {
				c.stackPair(p).SetUint16(c.pop())
			})
			return
		}
		switch p {
		case 0:
			DefineInstruction(opcode, "RET", 16, func(c *CPU) { c.PC = c.pop() })
		case 1:
			DefineInstruction(opcode, "RETI", 16, func(c *CPU) {
				c.PC = c.pop()
				c.IME = true
				c.imeDelay = 0
			})
		case 2:
			DefineInstruction(opcode, "JP HL", 4, func(c *CPU) { c.PC = c.HL.Uint16() })
		case 3:
			DefineInstruction(opcode, "LD SP, HL", 8, func(c *CPU) { c.SP = c.HL.Uint16() })
		}
	case 2:
		switch y {
		case 0, 1, 2, 3:
			DefineInstruction(opcode, fmt.Sprintf("JP %s, a16", conditionNames[y]), 12, func(c *CPU) {
				c.jumpAbsolute(c.condition(y))
			})
		case 4:
			DefineInstruction(opcode, "LD (C), A", 8, func(c *CPU) { c.bus.Write(0xFF00+uint16(c.C), c.A) })
		case 5:
			DefineInstruction(opcode, "LD (a16), A", 16, func(c *CPU) { c.bus.Write(c.readOperand16(), c.A) })
		case 6:
			DefineInstruction(opcode, "LD A, (C)", 8, func(c *CPU) { c.A = c.bus.Read(0xFF00 + uint16(c.C)) })
		case 7:
			DefineInstruction(opcode, "LD A, (a16)", 16, func(c *CPU) { c.A = c.bus.Read(c.readOperand16()) })
		}
	case 3:
		switch y {
		case 0:
			DefineInstruction(opcode, "JP a16", 12, func(c *CPU) { c.jumpAbsolute(true) })
		case 1:
			// dispatched by CPU.execute through InstructionSetCB
			DefineInstruction(opcode, "PREFIX CB", 4, nil)
		case 6:
			DefineInstruction(opcode, "DI", 4, (*CPU).disableInterrupts)
		case 7:
			DefineInstruction(opcode, "EI", 4, (*CPU).enableInterrupts)
		}
	case 4:
		if y < 4 {
			DefineInstruction(opcode, fmt.Sprintf("CALL %s, a16", conditionNames[y]), 12, func(c *CPU) {
				c.call(c.condition(y))
			})
		}
	case 5:
		if q == 0 {
			DefineInstruction(opcode, fmt.Sprintf("PUSH %s", stackPairNames[p]), 16, func(c *CPU) {
				c.push(c.stackPair(p).Uint16())
			})
		} else if p == 0 {
			DefineInstruction(opcode, "CALL a16", 12, func(c *CPU) { c.call(true) })
		}
	case 6:
		alu := aluOps[y]
		DefineInstruction(opcode, fmt.Sprintf("%s d8", alu.name), 8, func(c *CPU) {
			alu.fn(c, c.readOperand())
		})
	case 7:
		vector := uint16(y) * 8
		DefineInstruction(opcode, fmt.Sprintf("RST %02XH", vector), 16, func(c *CPU) {
			c.rst(vector)
		})
	}
}

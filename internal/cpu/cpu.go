// Package cpu provides an implementation of the Sharp SM83, the
// CPU of the Game Boy. The CPU executes one instruction per call
// to Step against a shared memory bus and reports how many clock
// cycles the instruction took, leaving it up to the caller to
// advance the rest of the system by the same amount.
package cpu

import (
	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/mmu"
	"github.com/thelolagemann/gomeboy/internal/types"
	"github.com/thelolagemann/gomeboy/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304

	// haltCycles is the number of cycles consumed by a step
	// in which the CPU is halted.
	haltCycles = 4
	// interruptCycles is the number of cycles consumed by
	// dispatching an interrupt.
	interruptCycles = 20
)

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	// IR holds the last fetched opcode.
	IR uint8
	// IME is the interrupt master enable flag.
	IME bool
	// Halted is set by HALT and cleared once an enabled
	// interrupt is requested.
	Halted bool

	// imeDelay counts down the steps until a pending EI
	// takes effect.
	imeDelay uint8
	haltBug  bool

	ticks uint8

	bus *mmu.MMU
	irq *interrupts.Service
	log log.Logger
}

// Opt is a function that modifies a CPU.
type Opt func(c *CPU)

// WithLogger sets the logger used to report anomalies such as
// unmapped opcodes.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// NewCPU creates a new CPU instance on the given bus, in the
// state the DMG boot ROM leaves it.
func NewCPU(bus *mmu.MMU, irq *interrupts.Service, opts ...Opt) *CPU {
	c := &CPU{
		bus: bus,
		irq: irq,
		log: log.NewNullLogger(),
	}
	c.initRegisters()
	c.Reset()

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Reset loads the power-on register values. The bus is left
// untouched.
func (c *CPU) Reset() {
	c.powerOn()
	c.PC = types.EntryPoint
	c.SP = 0xFFFE
	c.IR = 0
	c.IME = false
	c.Halted = false
	c.imeDelay = 0
	c.haltBug = false
}

// IMEPending returns true if EI has been executed but has not
// yet taken effect.
func (c *CPU) IMEPending() bool {
	return c.imeDelay > 0
}

// SetIMEPending schedules IME to be set at the end of the next
// step, as if EI had just been executed.
func (c *CPU) SetIMEPending(pending bool) {
	if pending {
		c.imeDelay = 1
	} else {
		c.imeDelay = 0
	}
}

// Step executes a single instruction, or services a single
// interrupt, and returns the number of clock cycles consumed.
func (c *CPU) Step() uint8 {
	pending := c.irq.HasInterrupts()

	if c.Halted {
		if !pending {
			return haltCycles
		}
		c.Halted = false
		// without IME the interrupt only wakes the CPU
		if !c.IME {
			return haltCycles
		}
	}

	if pending && c.IME {
		return c.serviceInterrupt()
	}

	c.execute(c.fetch())
	if c.imeDelay > 0 {
		c.imeDelay--
		if c.imeDelay == 0 {
			c.IME = true
		}
	}
	return c.ticks
}

// fetch reads the opcode at PC into IR.
func (c *CPU) fetch() uint8 {
	c.IR = c.bus.Read(c.PC)
	if c.haltBug {
		c.haltBug = false
	} else {
		c.PC++
	}
	return c.IR
}

// execute runs the given opcode, leaving the cycles it consumed
// in c.ticks.
func (c *CPU) execute(opcode uint8) {
	if opcode == 0xCB {
		instruction := InstructionSetCB[c.readOperand()]
		c.ticks = instruction.cycles + 4
		instruction.fn(c)
		return
	}

	instruction := InstructionSet[opcode]
	c.ticks = instruction.cycles
	instruction.fn(c)
}

// serviceInterrupt pushes PC and jumps to the vector of the
// highest priority pending interrupt.
func (c *CPU) serviceInterrupt() uint8 {
	c.IME = false
	c.imeDelay = 0

	vector := c.irq.Vector()
	c.push(c.PC)
	c.PC = vector

	return interruptCycles
}

// disableInterrupts clears IME, cancelling any pending EI.
//
//	DI
func (c *CPU) disableInterrupts() {
	c.IME = false
	c.imeDelay = 0
}

// enableInterrupts sets IME after the instruction following EI.
// An EI while an enable is already pending does not delay it.
//
//	EI
func (c *CPU) enableInterrupts() {
	if !c.IME && c.imeDelay == 0 {
		c.imeDelay = 2
	}
}

// stop resets the divider. When no interrupt is pending, the byte
// following STOP is skipped.
//
//	STOP
func (c *CPU) stop() {
	c.bus.Write(types.DIV, 0)
	if !c.irq.HasInterrupts() {
		c.PC++
	}
}

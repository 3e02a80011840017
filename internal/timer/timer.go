// Package timer provides an implementation of the Game Boy
// timer. The divider (types.DIV) runs unconditionally, while
// the counter (types.TIMA) advances at the frequency selected
// by types.TAC and raises the timer interrupt on overflow.
//
// All timer registers live on the memory bus; the controller
// only owns the two sub-counters that accumulate clock cycles
// between register increments.
package timer

import (
	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/mmu"
	"github.com/thelolagemann/gomeboy/internal/types"
)

// DividerPeriod is the number of clock cycles between
// increments of types.DIV.
const DividerPeriod = 256

// divisors holds the number of clock cycles per TIMA increment
// for each of the input clock selections in types.TAC.
//
//	00: CPU Clock / 1024 (4096 Hz)
//	01: CPU Clock / 16   (262144 Hz)
//	10: CPU Clock / 64   (65536 Hz)
//	11: CPU Clock / 256  (16384 Hz)
var divisors = [4]uint16{1024, 16, 64, 256}

// Controller is a timer controller. It is used to generate
// interrupts at a specific frequency. The frequency can be
// configured using the types.TAC register.
type Controller struct {
	divCounter  uint16
	timaCounter uint16

	bus *mmu.MMU
	irq *interrupts.Service
}

// NewController returns a new timer controller.
func NewController(bus *mmu.MMU, irq *interrupts.Service) *Controller {
	return &Controller{
		bus: bus,
		irq: irq,
	}
}

// Enabled returns true if types.TAC bit 2 is set.
func (c *Controller) Enabled() bool {
	return c.bus.Read(types.TAC)&types.Bit2 != 0
}

// Divisor returns the number of clock cycles per TIMA
// increment currently selected by types.TAC.
func (c *Controller) Divisor() uint16 {
	return divisors[c.bus.Read(types.TAC)&0b11]
}

// Tick advances the timer by the given number of clock cycles.
func (c *Controller) Tick(cycles uint8) {
	// the divider always runs
	c.divCounter += uint16(cycles)
	for c.divCounter >= DividerPeriod {
		c.divCounter -= DividerPeriod
		*c.bus.Ref(types.DIV)++
	}

	if !c.Enabled() {
		return
	}

	divisor := c.Divisor()
	c.timaCounter += uint16(cycles)
	for c.timaCounter >= divisor {
		c.timaCounter -= divisor

		tima := c.bus.Ref(types.TIMA)
		if *tima == 0xFF {
			// overflow: reload from TMA and request an interrupt
			*tima = c.bus.Read(types.TMA)
			c.irq.Request(interrupts.TimerFlag)
		} else {
			*tima++
		}
	}
}

// Reset clears the internal sub-counters. The registers on
// the bus are left untouched.
func (c *Controller) Reset() {
	c.divCounter = 0
	c.timaCounter = 0
}

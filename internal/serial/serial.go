// Package serial provides the serial port controller. Transfers
// complete as soon as they are started, instead of shifting out
// one bit every 512 cycles.
package serial

import (
	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/mmu"
	"github.com/thelolagemann/gomeboy/internal/types"
)

// transferStart is the value of types.SC that starts a transfer
// with the internal clock.
const transferStart = types.Bit7 | types.Bit0

// Controller is the serial controller. It polls types.SC, and
// when a transfer has been requested, exchanges types.SB with the
// attached Device and raises the serial interrupt.
type Controller struct {
	AttachedDevice Device // the device that is attached to this controller.

	bus *mmu.MMU
	irq *interrupts.Service
}

// NewController creates a new Controller.
//
// By default, the Controller is attached to a nullDevice, which acts as if
// there is no device attached. If you want to attach a device, use the
// Controller.Attach method.
func NewController(bus *mmu.MMU, irq *interrupts.Service) *Controller {
	return &Controller{
		AttachedDevice: nullDevice{},
		bus:            bus,
		irq:            irq,
	}
}

// Attach attaches a Device to the Controller.
func (c *Controller) Attach(d Device) {
	c.AttachedDevice = d
}

// Tick completes any transfer that has been requested since
// the last call.
func (c *Controller) Tick() {
	sc := c.bus.Ref(types.SC)
	if *sc&transferStart != transferStart {
		return
	}

	c.bus.Write(types.SB, c.AttachedDevice.Exchange(c.bus.Read(types.SB)))
	*sc &^= types.Bit7
	c.irq.Request(interrupts.SerialFlag)
}

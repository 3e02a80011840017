// Package interrupts provides the interrupt controller. The controller
// keeps no state of its own: the requested (types.IF) and enabled
// (types.IE) interrupts live on the memory bus, and the master enable
// flag (IME) belongs to the CPU.
package interrupts

import (
	"github.com/thelolagemann/gomeboy/internal/mmu"
	"github.com/thelolagemann/gomeboy/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0),
	// which is requested every time the PPU enters
	// VBlank (LY == 144).
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1), which
	// is requested by the LCD STAT register (types.STAT),
	// when certain conditions are met.
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// which is requested when the timer overflows,
	// (types.TIMA > 0xFF).
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3),
	// which is requested when a serial transfer is
	// completed.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4),
	// which is requested when any of types.P1 bits 0-3
	// go from high to low.
	JoypadFlag = types.Bit4

	// Mask covers the five interrupt bits of IF and IE.
	Mask uint8 = 0x1F
)

const (
	VBlankVector uint16 = 0x0040
	LCDVector    uint16 = 0x0048
	TimerVector  uint16 = 0x0050
	SerialVector uint16 = 0x0058
	JoypadVector uint16 = 0x0060
)

// Service is the interrupt service, used to request
// interrupts and to get the current interrupt vector.
//
// When an interrupt is requested, the corresponding bit
// in types.IF is set. When an interrupt is enabled, the
// corresponding bit in types.IE is set. When an interrupt
// is requested and enabled, and the IME is set, the CPU
// will jump to the interrupt vector, and the corresponding
// bit in types.IF will be cleared.
type Service struct {
	bus *mmu.MMU
}

// NewService returns a new Service operating on the
// provided bus.
func NewService(bus *mmu.MMU) *Service {
	return &Service{bus: bus}
}

// Flag returns the raw contents of types.IF.
func (s *Service) Flag() uint8 {
	return s.bus.Read(types.IF)
}

// Enable returns the raw contents of types.IE.
func (s *Service) Enable() uint8 {
	return s.bus.Read(types.IE)
}

// Request requests the specified interrupt, by setting
// the corresponding bit in types.IF.
func (s *Service) Request(flag uint8) {
	*s.bus.Ref(types.IF) |= flag
}

// Pending returns true if the interrupt has been requested.
func (s *Service) Pending(flag uint8) bool {
	return s.bus.Read(types.IF)&flag != 0
}

// Enabled returns true if the interrupt is enabled in types.IE.
func (s *Service) Enabled(flag uint8) bool {
	return s.bus.Read(types.IE)&flag != 0
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.bus.Read(types.IE)&s.bus.Read(types.IF)&Mask != 0
}

// Vector returns the vector of the highest priority interrupt
// that is both requested and enabled, or 0 if there is none.
// The corresponding bit in types.IF is cleared.
//
// Priority runs from bit 0 (VBlank) to bit 4 (Joypad).
func (s *Service) Vector() uint16 {
	iF := s.bus.Ref(types.IF)
	pending := s.bus.Read(types.IE) & *iF & Mask
	if pending == 0 {
		return 0
	}
	for i := uint8(0); i < 5; i++ {
		flag := uint8(1 << i)
		if pending&flag != 0 {
			*iF &^= flag
			return VBlankVector + uint16(i)*8
		}
	}

	return 0
}

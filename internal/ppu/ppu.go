// Package ppu provides a stand-in for the Game Boy's (P)ixel
// (P)rocessing (U)nit. Nothing is rendered: the PPU only keeps
// the scanline counter (types.LY) moving and requests the VBlank
// interrupt, which is all most programs need to make progress.
package ppu

import (
	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/mmu"
	"github.com/thelolagemann/gomeboy/internal/types"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144

	// CyclesPerLine is the number of clock cycles spent on
	// each scanline.
	CyclesPerLine = 456
	// LinesPerFrame is the number of scanlines in a frame,
	// including the 10 lines of VBlank.
	LinesPerFrame = 154
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = CyclesPerLine * LinesPerFrame
)

// PPU counts scanlines.
//
// References:
//   - [Pan Docs](https://gbdev.io/pandocs/Graphics.html)
type PPU struct {
	dots uint16

	bus *mmu.MMU
	irq *interrupts.Service
}

// New returns a new PPU on the given bus.
func New(bus *mmu.MMU, irq *interrupts.Service) *PPU {
	return &PPU{
		bus: bus,
		irq: irq,
	}
}

// Enabled returns true if the LCD is switched on (types.LCDC bit 7).
func (p *PPU) Enabled() bool {
	return p.bus.Read(types.LCDC)&types.Bit7 != 0
}

// Tick advances the PPU by the given number of clock cycles. While
// the LCD is off, LY is held at 0.
func (p *PPU) Tick(cycles uint8) {
	if !p.Enabled() {
		p.dots = 0
		p.bus.Write(types.LY, 0)
		return
	}

	p.dots += uint16(cycles)
	for p.dots >= CyclesPerLine {
		p.dots -= CyclesPerLine

		ly := p.bus.Ref(types.LY)
		*ly++
		switch {
		case *ly == ScreenHeight:
			p.irq.Request(interrupts.VBlankFlag)
		case *ly >= LinesPerFrame:
			*ly = 0
		}
	}
}

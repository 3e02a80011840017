package ppu

import (
	"testing"

	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/mmu"
	"github.com/thelolagemann/gomeboy/internal/types"
)

func newPPU() (*PPU, *mmu.MMU) {
	bus := mmu.NewMMU()
	return New(bus, interrupts.NewService(bus)), bus
}

// tickCycles ticks the PPU in 4 cycle steps.
func tickCycles(p *PPU, cycles int) {
	for i := 0; i < cycles; i += 4 {
		p.Tick(4)
	}
}

func TestPPU_Disabled(t *testing.T) {
	p, bus := newPPU()
	bus.Write(types.LY, 0x20)
	tickCycles(p, CyclesPerLine*4)
	if got := bus.Read(types.LY); got != 0 {
		t.Errorf("expected LY to be held at 0, got %d", got)
	}
}

func TestPPU_Lines(t *testing.T) {
	p, bus := newPPU()
	bus.Write(types.LCDC, 0x91)

	tickCycles(p, CyclesPerLine-4)
	if got := bus.Read(types.LY); got != 0 {
		t.Fatalf("expected LY 0, got %d", got)
	}
	tickCycles(p, 4)
	if got := bus.Read(types.LY); got != 1 {
		t.Fatalf("expected LY 1, got %d", got)
	}
}

func TestPPU_VBlank(t *testing.T) {
	p, bus := newPPU()
	bus.Write(types.LCDC, 0x91)

	tickCycles(p, CyclesPerLine*ScreenHeight-4)
	if bus.Read(types.IF)&interrupts.VBlankFlag != 0 {
		t.Fatalf("VBlank requested before line 144")
	}
	tickCycles(p, 4)
	if got := bus.Read(types.LY); got != ScreenHeight {
		t.Fatalf("expected LY %d, got %d", ScreenHeight, got)
	}
	if bus.Read(types.IF)&interrupts.VBlankFlag == 0 {
		t.Errorf("expected VBlank to be requested on line 144")
	}

	tickCycles(p, CyclesPerLine*(LinesPerFrame-ScreenHeight))
	if got := bus.Read(types.LY); got != 0 {
		t.Errorf("expected LY to wrap to 0, got %d", got)
	}
}

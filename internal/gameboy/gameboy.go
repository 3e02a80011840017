// Package gameboy wires the CPU, memory bus, timer, PPU and
// serial port into a single machine and sequences them.
package gameboy

import (
	"io"

	"github.com/thelolagemann/gomeboy/internal/cpu"
	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/mmu"
	"github.com/thelolagemann/gomeboy/internal/ppu"
	"github.com/thelolagemann/gomeboy/internal/serial"
	"github.com/thelolagemann/gomeboy/internal/timer"
	"github.com/thelolagemann/gomeboy/internal/types"
	"github.com/thelolagemann/gomeboy/pkg/log"
	"github.com/thelolagemann/gomeboy/pkg/trace"
)

const (
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = ppu.CyclesPerFrame
	// FrameRate is the number of frames per second.
	FrameRate = cpu.ClockSpeed / float64(CyclesPerFrame)
)

// ioDefaults are the hardware register values left behind by
// the DMG boot ROM.
var ioDefaults = map[types.HardwareAddress]uint8{
	types.TAC:  0xF8,
	types.IF:   0xE1,
	types.LCDC: 0x91,
	types.STAT: 0x85,
	types.BGP:  0xFC,
	types.OBP0: 0xFF,
	types.OBP1: 0xFF,
}

// GameBoy is a headless DMG machine.
type GameBoy struct {
	CPU    *cpu.CPU
	MMU    *mmu.MMU
	IRQ    *interrupts.Service
	Timer  *timer.Controller
	PPU    *ppu.PPU
	Serial *serial.Controller

	Logger log.Logger

	tracer    trace.Tracer
	serialOut io.Writer
	cycles    uint64
}

// NewGameBoy returns a GameBoy with rom loaded at 0x0000 and the
// machine in its post boot state. If the rom does not fit in the
// address space, mmu.ErrROMTooLarge is returned.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.MMU = mmu.NewMMU()
	if err := g.MMU.Load(rom); err != nil {
		return nil, err
	}
	for address, value := range ioDefaults {
		g.MMU.Write(address, value)
	}

	g.IRQ = interrupts.NewService(g.MMU)
	g.CPU = cpu.NewCPU(g.MMU, g.IRQ, cpu.WithLogger(g.Logger))
	g.Timer = timer.NewController(g.MMU, g.IRQ)
	g.PPU = ppu.New(g.MMU, g.IRQ)
	g.Serial = serial.NewController(g.MMU, g.IRQ)
	if g.serialOut != nil {
		g.Serial.Attach(serial.NewWriterDevice(g.serialOut))
	}

	g.Logger.Debugf("gameboy: loaded %d byte rom", len(rom))
	return g, nil
}

// Step executes a single CPU step and advances the rest of the
// machine by the cycles it took.
func (g *GameBoy) Step() uint8 {
	pc := g.CPU.PC
	ticks := g.CPU.Step()
	g.Timer.Tick(ticks)
	g.PPU.Tick(ticks)
	g.Serial.Tick()
	g.cycles += uint64(ticks)

	if g.tracer != nil {
		g.tracer.Trace(g.entry(pc, ticks))
	}
	return ticks
}

// Frame steps the machine for a single frame's worth of cycles
// and returns the number of cycles actually executed, which can
// overshoot by the length of the final instruction.
func (g *GameBoy) Frame() uint32 {
	var cycles uint32
	for cycles < CyclesPerFrame {
		cycles += uint32(g.Step())
	}
	return cycles
}

// Cycles returns the number of clock cycles executed so far.
func (g *GameBoy) Cycles() uint64 {
	return g.cycles
}

// entry captures the machine state after a step starting at pc.
func (g *GameBoy) entry(pc uint16, ticks uint8) trace.Entry {
	c := g.CPU
	return trace.Entry{
		PC:     pc,
		Opcode: c.IR,
		Ticks:  ticks,
		A:      c.A,
		F:      c.F,
		B:      c.B,
		C:      c.C,
		D:      c.D,
		E:      c.E,
		H:      c.H,
		L:      c.L,
		SP:     c.SP,
		IME:    c.IME,
		Halted: c.Halted,
		IF:     g.MMU.Read(types.IF),
		IE:     g.MMU.Read(types.IE),
	}
}

// MooneyeResult reports the outcome of a mooneye test rom. A
// passing test loads the fibonacci sequence 3/5/8/13/21/34 into
// B/C/D/E/H/L, and a failing test loads 0x42 into each of them.
// done is false while neither pattern is present.
func (g *GameBoy) MooneyeResult() (passed, done bool) {
	c := g.CPU
	switch {
	case c.B == 3 && c.C == 5 && c.D == 8 && c.E == 13 && c.H == 21 && c.L == 34:
		return true, true
	case c.B == 0x42 && c.C == 0x42 && c.D == 0x42 && c.E == 0x42 && c.H == 0x42 && c.L == 0x42:
		return false, true
	}
	return false, false
}

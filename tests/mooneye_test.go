package tests

import (
	"path/filepath"
	"testing"

	"github.com/thelolagemann/gomeboy/internal/gameboy"
)

const mooneyeROMPath = "roms/mooneye"

type mooneyeTest struct {
	romPath string
	passed  bool
}

func (m *mooneyeTest) Name() string {
	return filepath.Base(m.romPath)
}

func (m *mooneyeTest) Passed() bool {
	return m.passed
}

// Run executes the rom until it loads either the fibonacci
// sequence 3/5/8/13/21/34 (pass) or 0x42 (fail) into registers
// B, C, D, E, H and L.
func (m *mooneyeTest) Run(t *testing.T) {
	t.Run(m.Name(), func(t *testing.T) {
		g, done := runROM(t, m.romPath, 60*10, func(g *gameboy.GameBoy) bool {
			_, done := g.MooneyeResult()
			return done
		})
		if !done {
			t.Fatal("timed out")
		}

		expectedRegisters := []uint8{3, 5, 8, 13, 21, 34}
		for i, r := range []uint8{g.CPU.B, g.CPU.C, g.CPU.D, g.CPU.E, g.CPU.H, g.CPU.L} {
			if r != expectedRegisters[i] {
				t.Errorf("expected register %d to be %d, got %d", i, expectedRegisters[i], r)
			}
		}
		m.passed = !t.Failed()
	})
}

func testMooneye(table *TestTable) {
	tS := table.NewTestSuite("mooneye")

	for _, dir := range []string{"bits", "instr", "interrupts", "timer"} {
		tc := tS.NewTestCollection(dir)
		for _, rom := range romsInDir(filepath.Join(mooneyeROMPath, "acceptance", dir)) {
			tc.Add(&mooneyeTest{romPath: rom})
		}
	}

	// only the cpu level roms from the top level acceptance
	// directory run without a real ppu or cartridge
	cpuOnly := map[string]bool{
		"add_sp_e_timing.gb":         true,
		"call_timing.gb":             true,
		"di_timing-GS.gb":            true,
		"ei_sequence.gb":             true,
		"ei_timing.gb":               true,
		"halt_ime0_ei.gb":            true,
		"halt_ime0_nointr_timing.gb": true,
		"halt_ime1_timing.gb":        true,
		"if_ie_registers.gb":         true,
		"jp_timing.gb":               true,
		"rapid_di_ei.gb":             true,
		"ret_timing.gb":              true,
		"reti_intr_timing.gb":        true,
		"reti_timing.gb":             true,
		"rst_timing.gb":              true,
	}
	tc := tS.NewTestCollection("acceptance")
	for _, rom := range romsInDir(filepath.Join(mooneyeROMPath, "acceptance")) {
		if cpuOnly[filepath.Base(rom)] {
			tc.Add(&mooneyeTest{romPath: rom})
		}
	}
}

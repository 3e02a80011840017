package tests

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/thelolagemann/gomeboy/internal/gameboy"
)

const blarggROMPath = "roms/blargg"

// blarggTest runs a rom that reports its result over the serial
// port.
type blarggTest struct {
	romPath string
	frames  int
	passed  bool
}

func (b *blarggTest) Name() string {
	return strings.TrimSuffix(filepath.Base(b.romPath), ".gb")
}

func (b *blarggTest) Passed() bool {
	return b.passed
}

func (b *blarggTest) Run(t *testing.T) {
	t.Run(b.Name(), func(t *testing.T) {
		var output strings.Builder
		_, done := runROM(t, b.romPath, b.frames, func(*gameboy.GameBoy) bool {
			out := output.String()
			return strings.Contains(out, "Passed") || strings.Contains(out, "Failed")
		}, gameboy.WithSerialWriter(&output))

		if !done {
			t.Fatalf("timed out, serial output: %q", output.String())
		}
		if !strings.Contains(output.String(), "Passed") {
			t.Errorf("serial output: %q", output.String())
		}
		b.passed = !t.Failed()
	})
}

func testBlargg(table *TestTable) {
	tS := table.NewTestSuite("blargg")

	cpuInstrs := tS.NewTestCollection("cpu_instrs")
	for _, rom := range romsInDir(filepath.Join(blarggROMPath, "cpu_instrs", "individual")) {
		cpuInstrs.Add(&blarggTest{romPath: rom, frames: 60 * 30})
	}

	instrTiming := tS.NewTestCollection("instr_timing")
	for _, rom := range romsInDir(filepath.Join(blarggROMPath, "instr_timing")) {
		instrTiming.Add(&blarggTest{romPath: rom, frames: 60 * 10})
	}
}

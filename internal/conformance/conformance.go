// Package conformance runs single step CPU test vectors, in the
// JSON format used by the sm83 SingleStepTests suite: every test
// sets up registers and memory, executes exactly one CPU step and
// lists the registers and memory expected afterwards.
package conformance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/thelolagemann/gomeboy/internal/cpu"
	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/mmu"
	"github.com/thelolagemann/gomeboy/pkg/utils"
)

// State is the machine state before or after a test.
type State struct {
	PC  uint16 `json:"pc"`
	SP  uint16 `json:"sp"`
	A   uint8  `json:"a"`
	B   uint8  `json:"b"`
	C   uint8  `json:"c"`
	D   uint8  `json:"d"`
	E   uint8  `json:"e"`
	F   uint8  `json:"f"`
	H   uint8  `json:"h"`
	L   uint8  `json:"l"`
	IME uint8  `json:"ime"`
	// EI is set when an EI instruction has executed but not yet
	// taken effect.
	EI  *uint8      `json:"ei,omitempty"`
	IE  *uint8      `json:"ie,omitempty"`
	RAM [][2]uint16 `json:"ram"`
}

// Test is a single test vector.
type Test struct {
	Name    string `json:"name"`
	Initial State  `json:"initial"`
	Final   State  `json:"final"`
	// Cycles holds one element per machine cycle. Only its
	// length is used.
	Cycles []json.RawMessage `json:"cycles,omitempty"`
}

// Result is the outcome of running a single Test.
type Result struct {
	Name  string
	Ticks uint8
	Diffs []string
	// Digest is the xxhash digest of memory after the step.
	Digest uint64
}

// Passed returns true if the final state matched.
func (r Result) Passed() bool {
	return len(r.Diffs) == 0
}

// Load decodes a JSON array of tests.
func Load(r io.Reader) ([]Test, error) {
	var tests []Test
	if err := json.NewDecoder(r).Decode(&tests); err != nil {
		return nil, err
	}
	return tests, nil
}

// File is a named set of tests.
type File struct {
	Name  string
	Tests []Test
}

// LoadFiles loads every .json file in path, which may be a
// single (optionally gzipped) file, or a .zip or .7z archive.
func LoadFiles(path string) ([]File, error) {
	entries, err := utils.LoadArchive(path)
	if err != nil {
		return nil, err
	}

	var files []File
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name, ".gz")
		if filepath.Ext(name) != ".json" {
			continue
		}
		tests, err := Load(bytes.NewReader(entry.Data))
		if err != nil {
			return nil, fmt.Errorf("conformance: %s: %w", entry.Name, err)
		}
		files = append(files, File{Name: name, Tests: tests})
	}
	return files, nil
}

// Run executes a single test on a fresh machine.
func Run(test Test, opts ...cpu.Opt) Result {
	bus := mmu.NewMMU()
	c := cpu.NewCPU(bus, interrupts.NewService(bus), opts...)

	in := test.Initial
	c.PC, c.SP = in.PC, in.SP
	c.A, c.B, c.C, c.D, c.E, c.F, c.H, c.L = in.A, in.B, in.C, in.D, in.E, in.F, in.H, in.L
	c.IME = in.IME != 0
	c.SetIMEPending(in.EI != nil && *in.EI != 0)
	for _, row := range in.RAM {
		bus.Write(row[0], uint8(row[1]))
	}
	if in.IE != nil {
		bus.Write(0xFFFF, *in.IE)
	}

	result := Result{Name: test.Name}
	result.Ticks = c.Step()
	result.Digest = bus.Digest()

	out := test.Final
	diff := func(name string, want, got uint16) {
		if want != got {
			result.Diffs = append(result.Diffs, fmt.Sprintf("%s: expected %04X, got %04X", name, want, got))
		}
	}
	diff("A", uint16(out.A), uint16(c.A))
	diff("B", uint16(out.B), uint16(c.B))
	diff("C", uint16(out.C), uint16(c.C))
	diff("D", uint16(out.D), uint16(c.D))
	diff("E", uint16(out.E), uint16(c.E))
	diff("F", uint16(out.F), uint16(c.F))
	diff("H", uint16(out.H), uint16(c.H))
	diff("L", uint16(out.L), uint16(c.L))
	diff("PC", out.PC, c.PC)
	diff("SP", out.SP, c.SP)
	diff("IME", uint16(out.IME), boolToUint16(c.IME))
	if out.EI != nil {
		diff("EI", uint16(*out.EI), boolToUint16(c.IMEPending()))
	}
	if len(test.Cycles) > 0 {
		diff("cycles", uint16(len(test.Cycles)*4), uint16(result.Ticks))
	}
	for _, row := range out.RAM {
		diff(fmt.Sprintf("(%04X)", row[0]), row[1], uint16(bus.Read(row[0])))
	}

	return result
}

func boolToUint16(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

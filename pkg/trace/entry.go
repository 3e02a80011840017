// Package trace records the machine state after every executed
// instruction. Entries can be kept in a Ring for post-mortem
// dumps, written as text (optionally brotli compressed), or
// streamed to remote viewers by the web package.
package trace

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// EntrySize is the size of a binary encoded Entry.
const EntrySize = 17

// ErrShortEntry is returned when decoding fewer than EntrySize bytes.
var ErrShortEntry = errors.New("trace: short entry")

// Entry is the state of the machine after a single step.
type Entry struct {
	PC     uint16 // address the step started at
	Opcode uint8
	Ticks  uint8

	A, F, B, C, D, E, H, L uint8
	SP                     uint16

	IME    bool
	Halted bool
	IF, IE uint8
}

// String formats the entry as a single trace line.
func (e Entry) String() string {
	return fmt.Sprintf("PC=%04X OP=%02X cyc=%d A=%02X F=%02X B=%02X C=%02X D=%02X E=%02X H=%02X L=%02X SP=%04X IME=%t IF=%02X IE=%02X",
		e.PC, e.Opcode, e.Ticks, e.A, e.F, e.B, e.C, e.D, e.E, e.H, e.L, e.SP, e.IME, e.IF, e.IE)
}

// AppendBinary appends the fixed-width little-endian encoding of
// the entry to b.
//
//	0-1   PC
//	2     opcode
//	3     ticks
//	4-11  A F B C D E H L
//	12-13 SP
//	14    bit 0: IME, bit 1: halted
//	15    IF
//	16    IE
func (e Entry) AppendBinary(b []byte) []byte {
	b = binary.LittleEndian.AppendUint16(b, e.PC)
	b = append(b, e.Opcode, e.Ticks, e.A, e.F, e.B, e.C, e.D, e.E, e.H, e.L)
	b = binary.LittleEndian.AppendUint16(b, e.SP)

	var status uint8
	if e.IME {
		status |= 1
	}
	if e.Halted {
		status |= 2
	}
	return append(b, status, e.IF, e.IE)
}

// DecodeEntry decodes an entry encoded by AppendBinary.
func DecodeEntry(b []byte) (Entry, error) {
	if len(b) < EntrySize {
		return Entry{}, ErrShortEntry
	}
	return Entry{
		PC:     binary.LittleEndian.Uint16(b[0:]),
		Opcode: b[2],
		Ticks:  b[3],
		A:      b[4],
		F:      b[5],
		B:      b[6],
		C:      b[7],
		D:      b[8],
		E:      b[9],
		H:      b[10],
		L:      b[11],
		SP:     binary.LittleEndian.Uint16(b[12:]),
		IME:    b[14]&1 != 0,
		Halted: b[14]&2 != 0,
		IF:     b[15],
		IE:     b[16],
	}, nil
}

// Tracer receives an Entry after every step.
type Tracer interface {
	Trace(e Entry)
}

type multiTracer []Tracer

func (m multiTracer) Trace(e Entry) {
	for _, t := range m {
		t.Trace(e)
	}
}

// Multi returns a Tracer forwarding every entry to each of tracers.
func Multi(tracers ...Tracer) Tracer {
	return multiTracer(tracers)
}

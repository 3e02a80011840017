package cpu

import (
	"testing"

	"github.com/thelolagemann/gomeboy/internal/mmu"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		code   []uint8
		want   string
		length uint8
	}{
		{[]uint8{0x00}, "NOP", 1},
		{[]uint8{0x80}, "ADD A, B", 1},
		{[]uint8{0x3E, 0x42}, "LD A, $42", 2},
		{[]uint8{0x21, 0x34, 0x12}, "LD HL, $1234", 3},
		{[]uint8{0xC3, 0x50, 0x01}, "JP $0150", 3},
		{[]uint8{0xE0, 0x44}, "LDH ($FF44), A", 2},
		{[]uint8{0x18, 0xFE}, "JR $C000", 2},
		{[]uint8{0x20, 0x05}, "JR NZ, $C007", 2},
		{[]uint8{0xE8, 0xFF}, "ADD SP, -1", 2},
		{[]uint8{0xCB, 0x7C}, "BIT 7, H", 2},
		{[]uint8{0x10, 0x00}, "STOP", 2},
		{[]uint8{0xDD}, "ILLEGAL_DD", 1},
		{[]uint8{0xEF}, "RST 28H", 1},
	}
	for _, tt := range tests {
		bus := mmu.NewMMU()
		for i, b := range tt.code {
			bus.Write(0xC000+uint16(i), b)
		}
		name, length := Disassemble(bus, 0xC000)
		if name != tt.want {
			t.Errorf("expected %q, got %q", tt.want, name)
		}
		if length != tt.length {
			t.Errorf("%s: expected length %d, got %d", tt.want, tt.length, length)
		}
	}
}

func TestInstructionSet_Complete(t *testing.T) {
	for i := 0; i < 256; i++ {
		if InstructionSet[i].Name() == "" {
			t.Errorf("0x%02X has no instruction", i)
		}
		if i != 0xCB && InstructionSet[i].fn == nil {
			t.Errorf("0x%02X (%s) has no implementation", i, InstructionSet[i].Name())
		}
		if InstructionSetCB[i].fn == nil {
			t.Errorf("CB 0x%02X has no implementation", i)
		}
	}
}

// Package mmu provides the memory bus shared by the CPU, timer and
// interrupt controller. The bus is a flat 64kB byte store mapped 1:1
// onto the CPU's address space; there is no banking and no address
// decoding, so the hardware registers (IF, IE, DIV, ...) are ordinary
// bytes inside it.
package mmu

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gomeboy/internal/types"
)

// ErrROMTooLarge is returned by MMU.Load when the image does not fit
// into the address space.
var ErrROMTooLarge = errors.New("rom image exceeds address space")

// MMU is the memory bus. Reads and writes always succeed for any
// 16-bit address.
type MMU struct {
	raw [types.AddressSpace]uint8
}

// NewMMU returns a zero-filled MMU.
func NewMMU() *MMU {
	return &MMU{}
}

// Read returns the byte at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address]
}

// Write writes value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address] = value
}

// Ref returns a reference to the byte stored at address, allowing
// callers to update a memory cell in place, e.g.
//
//	*m.Ref(types.IF) |= types.Bit2
func (m *MMU) Ref(address uint16) *uint8 {
	return &m.raw[address]
}

// Load copies rom to address 0x0000. If the image is larger than the
// address space, ErrROMTooLarge is returned and memory is left as it
// was.
func (m *MMU) Load(rom []byte) error {
	if len(rom) > len(m.raw) {
		return fmt.Errorf("mmu: %d bytes: %w", len(rom), ErrROMTooLarge)
	}
	copy(m.raw[:], rom)
	return nil
}

// Clear zero-fills the whole address space.
func (m *MMU) Clear() {
	m.raw = [types.AddressSpace]uint8{}
}

// Digest returns a 64-bit hash of the full address space. Two buses
// with identical contents will always produce the same digest.
func (m *MMU) Digest() uint64 {
	return xxhash.Sum64(m.raw[:])
}

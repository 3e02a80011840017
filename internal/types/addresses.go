package types

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware registers are
// mapped to memory addresses 0xFF00 - 0xFF7F & 0xFFFF,
// and live in the flat address space alongside everything
// else, so reading one is no different from reading RAM.
type HardwareAddress = uint16

const (
	// P1 is the address of the P1 hardware register. The
	// display layer writes the joypad state here; nothing
	// in the core drives it.
	P1 HardwareAddress = 0xFF00
	// SB is the address of the SB hardware register, the
	// byte being shifted out of (and into) the serial port.
	SB HardwareAddress = 0xFF01
	// SC is the address of the SC hardware register. Writing
	// 0x81 starts a transfer using the internal clock.
	//
	//  Bit 7: Transfer Start Flag (1=Transfer in progress)
	//  Bit 0: Shift Clock (0=External, 1=Internal)
	SC HardwareAddress = 0xFF02
	// DIV is the address of the DIV hardware register. It is
	// incremented once every 256 clock cycles, regardless of
	// the state of TAC.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the TIMA hardware register. It is
	// incremented at the rate selected by TAC. When it overflows
	// it is reloaded from TMA and a timer interrupt is requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the TMA hardware register. The TMA
	// hardware register is loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the TAC hardware register.
	//
	//  Bit 2: Timer Enable
	//  Bits 1-0: Input Clock Select
	//            00: CPU Clock / 1024
	//            01: CPU Clock / 16
	//            10: CPU Clock / 64
	//            11: CPU Clock / 256
	TAC HardwareAddress = 0xFF07
	// IF is the address of the IF hardware register. The IF
	// hardware register is used to request interrupts.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// LCDC is the address of the LCDC hardware register. Only
	// bit 7 (LCD enable) is consulted by the core.
	LCDC HardwareAddress = 0xFF40
	// STAT is the address of the LCD status register.
	STAT HardwareAddress = 0xFF41
	// LY is the address of the LY hardware register, the
	// current scanline. The range of values for LY is 0-153.
	LY HardwareAddress = 0xFF44
	// BGP is the background palette data register.
	BGP HardwareAddress = 0xFF47
	// OBP0 is the object palette 0 data register.
	OBP0 HardwareAddress = 0xFF48
	// OBP1 is the object palette 1 data register.
	OBP1 HardwareAddress = 0xFF49
	// IE is the address of the IE hardware register. Bits
	// are laid out the same as IF; a set bit enables the
	// corresponding interrupt.
	IE HardwareAddress = 0xFFFF
)

const (
	// AddressSpace is the size of the CPU's address space.
	AddressSpace = 0x10000
	// EntryPoint is where execution starts once the boot
	// ROM has handed over control.
	EntryPoint uint16 = 0x0100
)

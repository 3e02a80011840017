package cpu

// halt puts the CPU into the halted state until an enabled
// interrupt is requested.
//
// If HALT is executed while IME is disabled and an interrupt is
// already pending, the CPU does not halt, and instead fails to
// increment PC on the next fetch, so the byte following HALT is
// executed twice.
//
//	HALT
func (c *CPU) halt() {
	if !c.IME && c.irq.HasInterrupts() {
		c.haltBug = true
		return
	}
	c.Halted = true
}

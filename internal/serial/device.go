package serial

import "io"

// Device is a device that can be attached to the Controller.
// A transfer exchanges one byte in each direction.
type Device interface {
	Exchange(out uint8) (in uint8)
}

// nullDevice is an implementation of Device that behaves as
// if no cable were plugged in: the line floats high, so every
// received byte is 0xFF.
type nullDevice struct{}

// Exchange always returns 0xFF.
func (n nullDevice) Exchange(uint8) uint8 { return 0xFF }

// writerDevice forwards every transferred byte to an io.Writer.
// Test ROMs commonly report their results this way.
type writerDevice struct {
	w io.Writer
}

// NewWriterDevice returns a Device writing every received
// byte to w.
func NewWriterDevice(w io.Writer) Device {
	return writerDevice{w: w}
}

// Exchange writes out to the underlying writer. Write errors
// are dropped, as a real cable has no way to report them.
func (d writerDevice) Exchange(out uint8) uint8 {
	_, _ = d.w.Write([]byte{out})
	return 0xFF
}

package gameboy

import (
	"io"

	"github.com/thelolagemann/gomeboy/pkg/log"
	"github.com/thelolagemann/gomeboy/pkg/trace"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// WithLogger sets the logger used by the machine and its CPU.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithSerialWriter attaches a device to the serial port that
// writes every transferred byte to w.
func WithSerialWriter(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.serialOut = w
	}
}

// WithTracer passes the machine state to t after every step.
func WithTracer(t trace.Tracer) Opt {
	return func(gb *GameBoy) {
		gb.tracer = t
	}
}

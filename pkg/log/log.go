// Package log provides the leveled logger used throughout the
// emulator. Components accept a Logger and default to the
// null logger, so nothing is printed unless a caller asks.
package log

import (
	"fmt"
	"io"
	"os"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

type logger struct {
	out   io.Writer
	debug bool
	exit  func(int)
}

// New returns a Logger printing to stdout. Debug messages are
// discarded.
func New() Logger {
	return &logger{out: os.Stdout, exit: os.Exit}
}

// NewWriter returns a Logger printing to w. When debug is
// false, Debugf is a no-op.
func NewWriter(w io.Writer, debug bool) Logger {
	return &logger{out: w, debug: debug, exit: os.Exit}
}

func (l *logger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "[INFO]\t"+format+"\n", args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "[ERROR]\t"+format+"\n", args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	fmt.Fprintf(l.out, "[DEBUG]\t"+format+"\n", args...)
}

// Fatalf logs the message and exits with status 1.
func (l *logger) Fatalf(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "[FATAL]\t"+format+"\n", args...)
	l.exit(1)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/thelolagemann/gomeboy/internal/gameboy"
	"github.com/thelolagemann/gomeboy/pkg/log"
	"github.com/thelolagemann/gomeboy/pkg/trace"
	"github.com/thelolagemann/gomeboy/pkg/trace/web"
	"github.com/thelolagemann/gomeboy/pkg/utils"
)

// serialBuffer collects serial output so that -until can match
// against it, and echoes it to stdout.
type serialBuffer struct {
	strings.Builder
	echo io.Writer
}

func (s *serialBuffer) Write(p []byte) (int, error) {
	_, _ = s.echo.Write(p)
	return s.Builder.Write(p)
}

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	steps := flag.Uint64("steps", 0, "The maximum number of steps to run, 0 for no limit")
	traceFile := flag.String("trace", "", "Write a trace of every step to this file, brotli compressed if it ends in .br")
	traceWindow := flag.Int("traceWindow", 0, "Print the last n trace entries on exit")
	listen := flag.String("listen", "", "Stream trace batches over websocket on this address")
	until := flag.String("until", "", "Stop once the serial output contains this string")
	mooneye := flag.Bool("mooneye", false, "Stop once a mooneye test result is detected")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger := log.NewWriter(os.Stdout, *debug)
	if *romFile == "" {
		logger.Fatalf("no rom file given")
	}

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	serialOut := &serialBuffer{echo: os.Stdout}
	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.WithSerialWriter(serialOut),
	}

	var tracers []trace.Tracer
	var ring *trace.Ring
	if *traceWindow > 0 {
		ring = trace.NewRing(*traceWindow)
		tracers = append(tracers, ring)
	}

	var writer *trace.Writer
	if *traceFile != "" {
		f, err := os.Create(*traceFile)
		if err != nil {
			logger.Fatalf("%v", err)
		}
		defer f.Close()
		writer = trace.NewWriter(f, strings.HasSuffix(*traceFile, ".br"))
		tracers = append(tracers, writer)
	}

	var hub *web.Hub
	if *listen != "" {
		hub = web.NewHub(*listen)
		tracers = append(tracers, hub)
		go func() {
			if err := hub.Run(ctx); err != nil {
				logger.Errorf("web: %v", err)
			}
		}()
		logger.Infof("streaming trace on ws://%s/", *listen)
	}

	if len(tracers) > 0 {
		opts = append(opts, gameboy.WithTracer(trace.Multi(tracers...)))
	}

	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	exitCode := run(ctx, gb, *steps, *until, *mooneye, serialOut)

	if hub != nil {
		hub.Flush()
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Errorf("trace: %v", err)
		}
	}
	if ring != nil {
		for _, e := range ring.Entries() {
			fmt.Println(e)
		}
	}

	logger.Infof("%d cycles, memory digest %016X", gb.Cycles(), gb.MMU.Digest())
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// run steps the machine until a stop condition is met, and
// returns the process exit code.
func run(ctx context.Context, gb *gameboy.GameBoy, steps uint64, until string, mooneye bool, serialOut *serialBuffer) int {
	for i := uint64(0); steps == 0 || i < steps; i++ {
		gb.Step()

		if until != "" && strings.Contains(serialOut.String(), until) {
			return 0
		}
		if mooneye {
			if passed, done := gb.MooneyeResult(); done {
				if passed {
					return 0
				}
				return 1
			}
		}
		// check for cancellation once per frame's worth of steps
		if i%gameboy.CyclesPerFrame == 0 {
			select {
			case <-ctx.Done():
				return 130
			default:
			}
		}
	}

	if until != "" || mooneye {
		return 1
	}
	return 0
}

package main

import (
	"flag"
	"fmt"

	"github.com/chip8vm/chip8/chip8"
	"github.com/chip8vm/chip8/statsview"
	"github.com/retroenv/retrogolib/log"
)

// Options are the command line settings of the emulator.
type Options struct {
	// ROM is the program to boot, empty for the built-in boot screen.
	ROM string

	// CyclesPerFrame is the number of instructions run every 1/60 s.
	CyclesPerFrame int

	// Wav, if set, is the file the buzzer output is recorded to.
	Wav string

	// Stats launches the runtime statistics server on StatsAddr.
	Stats     bool
	StatsAddr string

	Debug bool
	Quiet bool
}

// ReadArguments parses the command line.
func ReadArguments(args []string) (Options, error) {
	flags := flag.NewFlagSet("chip8", flag.ContinueOnError)
	opts := Options{}

	flags.IntVar(&opts.CyclesPerFrame, "cycles", chip8.DefaultCyclesPerFrame, "instructions executed per 60 Hz frame")
	flags.StringVar(&opts.Wav, "wav", "", "record the buzzer to a .wav file")
	flags.BoolVar(&opts.Stats, "stats", false, "launch the runtime statistics server")
	flags.StringVar(&opts.StatsAddr, "stats-addr", statsview.DefaultAddress, "listen address of the statistics server")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.Quiet, "quiet", false, "only log errors")

	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: chip8 [options] [rom]\n\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return opts, err
	}

	if flags.NArg() > 1 {
		flags.Usage()
		return opts, fmt.Errorf("expected at most one rom, got %d", flags.NArg())
	}
	opts.ROM = flags.Arg(0)

	cfg := chip8.DefaultConfig()
	cfg.CyclesPerFrame = opts.CyclesPerFrame
	if err := cfg.Validate(); err != nil {
		return opts, err
	}

	return opts, nil
}

// CreateLogger creates a logger with a level matching the options.
func CreateLogger(opts Options) *log.Logger {
	cfg := log.DefaultConfig()
	if opts.Debug {
		cfg.Level = log.DebugLevel
	} else if opts.Quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

package main

import (
	"errors"
	"flag"
	"testing"

	"github.com/chip8vm/chip8/chip8"
	"github.com/chip8vm/chip8/statsview"
	"github.com/retroenv/retrogolib/assert"
)

func TestReadArguments(t *testing.T) {
	opts, err := ReadArguments([]string{"-cycles", "64", "-wav", "out.wav", "-debug", "pong.ch8"})
	assert.NoError(t, err)
	assert.Equal(t, 64, opts.CyclesPerFrame)
	assert.Equal(t, "out.wav", opts.Wav)
	assert.Equal(t, "pong.ch8", opts.ROM)
	assert.True(t, opts.Debug)
	assert.False(t, opts.Stats)

	opts, err = ReadArguments([]string{"-stats", "-stats-addr", "localhost:9000"})
	assert.NoError(t, err)
	assert.True(t, opts.Stats)
	assert.Equal(t, "localhost:9000", opts.StatsAddr)
}

func TestReadArguments_Defaults(t *testing.T) {
	opts, err := ReadArguments(nil)
	assert.NoError(t, err)
	assert.Equal(t, chip8.DefaultCyclesPerFrame, opts.CyclesPerFrame)
	assert.Equal(t, "", opts.ROM)
	assert.Equal(t, statsview.DefaultAddress, opts.StatsAddr)
}

func TestReadArguments_Invalid(t *testing.T) {
	_, err := ReadArguments([]string{"-cycles", "0"})
	assert.Error(t, err, "cycles per frame must be >= 1, got 0")

	_, err = ReadArguments([]string{"a.ch8", "b.ch8"})
	assert.Error(t, err, "expected at most one rom, got 2")

	_, err = ReadArguments([]string{"-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

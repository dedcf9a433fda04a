package chip8

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/retroenv/retrogolib/log"
)

const (
	/// DefaultCyclesPerFrame approximates the RCA 1802, which could
	/// interpret roughly 500 CHIP-8 instructions per second.
	///
	DefaultCyclesPerFrame = 8

	/// FrameDuration is the time between timer ticks (60 Hz).
	///
	FrameDuration = time.Second / 60

	/// MaxCatchUpFrames limits how many frames Advance will run in one
	/// call after the host stalled.
	///
	MaxCatchUpFrames = 6
)

/// Config holds the parameters for a new Interpreter.
///
type Config struct {
	/// CyclesPerFrame is the number of instructions executed by each
	/// call to Update.
	///
	CyclesPerFrame int

	/// Random returns a uniformly distributed byte for CXNN. If nil, a
	/// time seeded math/rand source is used.
	///
	Random func() byte

	/// Logger receives load, reset and fault messages. If nil, a default
	/// logger is created.
	///
	Logger *log.Logger
}

/// DefaultConfig returns the settings used by the desktop emulator.
///
func DefaultConfig() Config {
	return Config{
		CyclesPerFrame: DefaultCyclesPerFrame,
	}
}

/// Validate returns an error if the configuration can't be used.
///
func (c Config) Validate() error {
	if c.CyclesPerFrame < 1 {
		return fmt.Errorf("cycles per frame must be >= 1, got %d", c.CyclesPerFrame)
	}
	return nil
}

/// Interpreter is the CHIP-8 virtual machine. It owns memory, registers,
/// the stack, timers, video and the keypad for one emulated session.
///
type Interpreter struct {
	/// V are the 16 virtual registers. VF doubles as the carry, borrow,
	/// shift and collision flag.
	///
	V [16]byte

	/// I is the address register.
	///
	I uint16

	/// PC is the program counter. All programs begin at 0x200.
	///
	PC uint16

	/// DT and ST are the delay and sound timers. Both count down once
	/// per frame while non-zero.
	///
	DT byte
	ST byte

	Memory  Memory
	Stack   Stack
	Display Display
	Keypad  Keypad

	/// Cycles is how many instruction cycles have been processed since
	/// the last reset, including cycles spent waiting for a key.
	///
	Cycles uint64

	/// Frames is how many times Update has completed since the last reset.
	///
	Frames uint64

	cyclesPerFrame int
	random         func() byte
	logger         *log.Logger

	/// elapsed is time carried over by Advance that didn't make up a
	/// whole frame.
	///
	elapsed time.Duration
}

/// New creates a CHIP-8 virtual machine with no program loaded.
///
func New(cfg Config) (*Interpreter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	vm := &Interpreter{
		cyclesPerFrame: cfg.CyclesPerFrame,
		random:         cfg.Random,
		logger:         cfg.Logger,
	}

	if vm.random == nil {
		src := rand.New(rand.NewSource(time.Now().UnixNano()))
		vm.random = func() byte {
			return byte(src.Intn(256))
		}
	}

	if vm.logger == nil {
		vm.logger = log.NewWithConfig(log.DefaultConfig())
	}

	vm.Reset()

	return vm, nil
}

/// Load a program into memory and reset the virtual machine.
///
func (vm *Interpreter) Load(program []byte) error {
	if err := vm.Memory.Load(program); err != nil {
		return err
	}

	vm.Reset()
	vm.logger.Info("Loaded ROM", log.Int("size", len(program)))

	return nil
}

/// LoadFile reads a ROM file and loads it.
///
func (vm *Interpreter) LoadFile(path string) error {
	program, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading rom '%s': %w", path, err)
	}

	if err := vm.Load(program); err != nil {
		return fmt.Errorf("loading rom '%s': %w", path, err)
	}

	return nil
}

/// Reset the virtual machine. Memory is restored to the loaded program,
/// every other component is returned to its power-on state.
///
func (vm *Interpreter) Reset() {
	vm.Memory.Reset()
	vm.Stack.Reset()
	vm.Display.Reset()
	vm.Keypad.Reset()

	vm.V = [16]byte{}
	vm.I = 0
	vm.PC = ProgramStart
	vm.DT = 0
	vm.ST = 0

	vm.Cycles = 0
	vm.Frames = 0
	vm.elapsed = 0

	vm.logger.Debug("Reset", log.Int("program", vm.Memory.ProgramSize()))
}

/// CyclesPerFrame returns the number of instructions run by Update.
///
func (vm *Interpreter) CyclesPerFrame() int {
	return vm.cyclesPerFrame
}

/// SetCyclesPerFrame changes emulation speed. Values below 1 are clamped.
///
func (vm *Interpreter) SetCyclesPerFrame(n int) {
	if n < 1 {
		n = 1
	}
	vm.cyclesPerFrame = n
}

/// SetKey emulates a CHIP-8 key being pressed or released.
///
func (vm *Interpreter) SetKey(key uint8, down bool) {
	vm.Keypad.SetDown(key, down)
}

/// Waiting returns true while FX0A holds up execution.
///
func (vm *Interpreter) Waiting() bool {
	return vm.Keypad.Waiting()
}

/// SoundActive returns true while the buzzer should be sounding.
///
func (vm *Interpreter) SoundActive() bool {
	return vm.ST > 0
}

/// Update runs one frame: CyclesPerFrame cycles, then both timers count
/// down once. Timers only ever tick here, so game timing doesn't depend
/// on emulation speed.
///
func (vm *Interpreter) Update() error {
	for i := 0; i < vm.cyclesPerFrame; i++ {
		if err := vm.Cycle(); err != nil {
			return err
		}
	}

	vm.tickTimers()
	vm.Frames++

	return nil
}

/// Advance runs as many frames as fit in the wall time elapsed since the
/// last call. Leftover time is carried to the next call.
///
func (vm *Interpreter) Advance(elapsed time.Duration) (int, error) {
	vm.elapsed += elapsed

	frames := 0
	for vm.elapsed >= FrameDuration {
		if frames == MaxCatchUpFrames {
			vm.elapsed %= FrameDuration
			break
		}

		vm.elapsed -= FrameDuration

		if err := vm.Update(); err != nil {
			return frames, err
		}
		frames++
	}

	return frames, nil
}

/// Cycle the virtual machine once. While waiting for a key this only
/// checks the keypad, otherwise a single instruction is executed.
///
/// A failing instruction leaves the machine as it was before the fetch.
///
func (vm *Interpreter) Cycle() error {
	if vm.Keypad.waiting {
		vm.pollKey()
		vm.Cycles++
		return nil
	}

	address := vm.PC

	inst, err := vm.fetch()
	if err != nil {
		return err
	}

	if err = vm.execute(address, Decode(inst)); err != nil {
		vm.PC = address

		var unknown *UnknownOpcodeError
		if errors.As(err, &unknown) {
			vm.logger.Debug("Unknown opcode",
				log.String("opcode", fmt.Sprintf("0x%04X", unknown.Opcode)),
				log.String("address", fmt.Sprintf("0x%03X", unknown.Address)))
		}
		return err
	}

	vm.Cycles++

	return nil
}

/// Fetch the next 16-bit instruction to execute.
///
func (vm *Interpreter) fetch() (uint16, error) {
	b, err := vm.Memory.Slice(vm.PC, 2)
	if err != nil {
		return 0, err
	}

	// advance the program counter
	vm.PC += 2

	return uint16(b[0])<<8 | uint16(b[1]), nil
}

/// Count both timers down one tick.
///
func (vm *Interpreter) tickTimers() {
	if vm.DT > 0 {
		vm.DT--
	}
	if vm.ST > 0 {
		vm.ST--
	}
}

/// String returns a summary of the register state.
///
func (vm *Interpreter) String() string {
	return fmt.Sprintf("CHIP-8{PC: %03X, I: %03X, V: [% 02X], Stack: % 03X, DT: %02X, ST: %02X, Cycles: %d}",
		vm.PC, vm.I, vm.V, vm.Stack.Addresses(), vm.DT, vm.ST, vm.Cycles)
}

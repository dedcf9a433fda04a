package chip8

import (
	"errors"
	"fmt"
)

var (
	/// ErrStackOverflow is returned when a call is made with 16 return
	/// addresses already on the stack.
	///
	ErrStackOverflow = errors.New("stack overflow")

	/// ErrStackUnderflow is returned when returning with an empty stack.
	///
	ErrStackUnderflow = errors.New("stack underflow")
)

/// An UnknownOpcodeError is returned when an instruction does not decode to
/// any known operation.
///
type UnknownOpcodeError struct {
	Opcode  uint16
	Address uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %04X at %03X", e.Opcode, e.Address)
}

/// A StackError wraps ErrStackOverflow or ErrStackUnderflow with the address
/// of the instruction that caused it.
///
type StackError struct {
	Address uint16
	Err     error
}

func (e *StackError) Error() string {
	return fmt.Sprintf("%v at %03X", e.Err, e.Address)
}

func (e *StackError) Unwrap() error {
	return e.Err
}

/// A RomTooLargeError is returned when a program will not fit between 0x200
/// and the end of memory.
///
type RomTooLargeError struct {
	Size int
}

func (e *RomTooLargeError) Error() string {
	return fmt.Sprintf("rom too large (program size: %d, free memory: %d)", e.Size, MaxProgramSize)
}

/// A MemoryOutOfBoundsError is returned when an instruction computes an
/// address outside of 0x000-0xFFF.
///
type MemoryOutOfBoundsError struct {
	Address int
}

func (e *MemoryOutOfBoundsError) Error() string {
	return fmt.Sprintf("memory access out of bounds at %04X", e.Address)
}

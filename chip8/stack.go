package chip8

/// StackDepth is the maximum number of nested subroutine calls.
///
const StackDepth = 16

/// Stack holds subroutine return addresses.
///
type Stack struct {
	cells [StackDepth]uint16
	sp    int
}

/// Push writes addr at the stack pointer and increments it.
///
func (s *Stack) Push(addr uint16) error {
	if s.sp == StackDepth {
		return ErrStackOverflow
	}
	s.cells[s.sp] = addr
	s.sp++
	return nil
}

/// Pop decrements the stack pointer and returns the address it points at.
///
func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	return s.cells[s.sp], nil
}

/// Len returns the number of addresses on the stack.
///
func (s *Stack) Len() int {
	return s.sp
}

/// Addresses returns the return addresses currently on the stack, oldest
/// first.
///
func (s *Stack) Addresses() []uint16 {
	return append([]uint16(nil), s.cells[:s.sp]...)
}

/// Reset empties the stack.
///
func (s *Stack) Reset() {
	*s = Stack{}
}

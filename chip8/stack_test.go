package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestStack_LIFO(t *testing.T) {
	var s Stack

	assert.NoError(t, s.Push(0x202))
	assert.NoError(t, s.Push(0x304))
	assert.Equal(t, 2, s.Len())

	addr, err := s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x304), addr)

	addr, err = s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x202), addr)
	assert.Equal(t, 0, s.Len())
}

func TestStack_Overflow(t *testing.T) {
	var s Stack

	for i := 0; i < StackDepth; i++ {
		assert.NoError(t, s.Push(uint16(i)))
	}

	err := s.Push(0xFFF)
	assert.True(t, errors.Is(err, ErrStackOverflow))
	assert.Equal(t, StackDepth, s.Len())
}

func TestStack_Underflow(t *testing.T) {
	var s Stack

	_, err := s.Pop()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.Equal(t, 0, s.Len())
}

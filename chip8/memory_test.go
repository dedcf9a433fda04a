package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemory_FontLoaded(t *testing.T) {
	m := NewMemory()

	for i, b := range font {
		v, err := m.Read(uint16(i))
		assert.NoError(t, err)
		assert.Equal(t, b, v)
	}
}

func TestMemory_Load(t *testing.T) {
	m := NewMemory()

	assert.NoError(t, m.Load([]byte{0x12, 0x34}))

	v, err := m.Read(ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x12), v)

	v, err = m.Read(ProgramStart + 1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x34), v)
	assert.Equal(t, 2, m.ProgramSize())
}

func TestMemory_LoadLimits(t *testing.T) {
	m := NewMemory()

	assert.NoError(t, m.Load(make([]byte, MaxProgramSize)))

	err := m.Load(make([]byte, MaxProgramSize+1))
	assert.Error(t, err, "rom too large (program size: 3585, free memory: 3584)")

	var tooLarge *RomTooLargeError
	assert.True(t, errors.As(err, &tooLarge))
	assert.Equal(t, MaxProgramSize+1, tooLarge.Size)

	// the previous program is still loaded
	assert.Equal(t, MaxProgramSize, m.ProgramSize())
}

func TestMemory_OutOfBounds(t *testing.T) {
	m := NewMemory()

	_, err := m.Read(MemorySize)
	var oob *MemoryOutOfBoundsError
	assert.True(t, errors.As(err, &oob))
	assert.Equal(t, MemorySize, oob.Address)

	err = m.Write(0xFFFF, 1)
	assert.True(t, errors.As(err, &oob))
	assert.Equal(t, 0xFFFF, oob.Address)

	assert.NoError(t, m.Write(0xFFF, 1))
}

func TestMemory_Slice(t *testing.T) {
	m := NewMemory()

	b, err := m.Slice(0xFFD, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(b))

	// slices alias memory
	b[2] = 0xAA
	v, err := m.Read(0xFFF)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xAA), v)

	_, err = m.Slice(0xFFE, 3)
	var oob *MemoryOutOfBoundsError
	assert.True(t, errors.As(err, &oob))
	assert.Equal(t, MemorySize, oob.Address)

	_, err = m.Slice(0x1234, 1)
	assert.True(t, errors.As(err, &oob))
	assert.Equal(t, 0x1234, oob.Address)
}

func TestMemory_ResetRestoresProgram(t *testing.T) {
	m := NewMemory()
	assert.NoError(t, m.Load([]byte{0xAB}))

	assert.NoError(t, m.Write(0x000, 0x00))
	assert.NoError(t, m.Write(ProgramStart, 0x00))
	assert.NoError(t, m.Write(0x300, 0x55))

	m.Reset()

	v, _ := m.Read(0x000)
	assert.Equal(t, font[0], v)
	v, _ = m.Read(ProgramStart)
	assert.Equal(t, byte(0xAB), v)
	v, _ = m.Read(0x300)
	assert.Equal(t, byte(0x00), v)
}

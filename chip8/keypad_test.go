package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeypad_SetDown(t *testing.T) {
	var k Keypad

	k.SetDown(0xA, true)
	assert.True(t, k.IsDown(0xA))
	assert.False(t, k.IsDown(0xB))

	k.SetDown(0xA, false)
	assert.False(t, k.IsDown(0xA))

	// keys outside of the keypad are ignored
	k.SetDown(0x10, true)
	assert.False(t, k.IsDown(0x10))
}

func TestKeypad_FirstDown(t *testing.T) {
	var k Keypad

	_, ok := k.FirstDown()
	assert.False(t, ok)

	k.SetDown(0xC, true)
	k.SetDown(0x3, true)

	key, ok := k.FirstDown()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x3), key)
}

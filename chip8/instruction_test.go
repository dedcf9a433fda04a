package chip8

import (
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	ins := Decode(0xD12F)

	assert.Equal(t, uint16(0xD12F), ins.Raw)
	assert.Equal(t, uint8(0xD), ins.Class)
	assert.Equal(t, uint8(0x1), ins.X)
	assert.Equal(t, uint8(0x2), ins.Y)
	assert.Equal(t, uint8(0xF), ins.N)
	assert.Equal(t, uint8(0x2F), ins.NN)
	assert.Equal(t, uint16(0x12F), ins.NNN)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		raw      uint16
		expected Op
	}{
		{0x00E0, OpClear},
		{0x00EE, OpReturn},
		{0x1234, OpJump},
		{0x2345, OpCall},
		{0x3A12, OpSkipEqualByte},
		{0x4A12, OpSkipNotEqualByte},
		{0x5AB0, OpSkipEqualReg},
		{0x6A12, OpLoadByte},
		{0x7A12, OpAddByte},
		{0x8AB0, OpLoadReg},
		{0x8AB1, OpOr},
		{0x8AB2, OpAnd},
		{0x8AB3, OpXor},
		{0x8AB4, OpAddReg},
		{0x8AB5, OpSub},
		{0x8AB6, OpShiftRight},
		{0x8AB7, OpSubReverse},
		{0x8ABE, OpShiftLeft},
		{0x9AB0, OpSkipNotEqualReg},
		{0xA123, OpLoadIndex},
		{0xB123, OpJumpOffset},
		{0xCA12, OpRandom},
		{0xDAB5, OpDraw},
		{0xEA9E, OpSkipKeyDown},
		{0xEAA1, OpSkipKeyUp},
		{0xFA07, OpLoadDelay},
		{0xFA0A, OpWaitKey},
		{0xFA15, OpSetDelay},
		{0xFA18, OpSetSound},
		{0xFA1E, OpAddIndex},
		{0xFA29, OpFont},
		{0xFA33, OpBCD},
		{0xFA55, OpStore},
		{0xFA65, OpRestore},

		{0x0000, OpUnknown},
		{0x0123, OpUnknown},
		{0x00FF, OpUnknown},
		{0x5AB1, OpUnknown},
		{0x8AB8, OpUnknown},
		{0x8ABF, OpUnknown},
		{0x9AB1, OpUnknown},
		{0xEA00, OpUnknown},
		{0xFA00, OpUnknown},
		{0xFFFF, OpUnknown},
	}

	for _, tt := range tests {
		op := Classify(Decode(tt.raw))
		assert.Equal(t, tt.expected, op, fmt.Sprintf("opcode %04X", tt.raw))
	}
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "DRW", OpDraw.String())
	assert.Equal(t, "???", OpUnknown.String())
	assert.Equal(t, "???", Op(-1).String())
	assert.Equal(t, "???", Op(1000).String())
}

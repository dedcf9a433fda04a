package chip8

/// Instruction is a decoded 16-bit CHIP-8 instruction split into its operand
/// fields. Not every field is meaningful for every operation.
///
type Instruction struct {
	Raw uint16

	/// Class is the high nibble, selecting the instruction group.
	///
	Class uint8

	/// X and Y are register operands, N is the low nibble.
	///
	X, Y, N uint8

	/// NN is the low byte, NNN the 12-bit address.
	///
	NN  uint8
	NNN uint16
}

/// Decode splits raw into its operand fields.
///
func Decode(raw uint16) Instruction {
	return Instruction{
		Raw:   raw,
		Class: uint8(raw >> 12),
		X:     uint8(raw >> 8 & 0xF),
		Y:     uint8(raw >> 4 & 0xF),
		N:     uint8(raw & 0xF),
		NN:    uint8(raw & 0xFF),
		NNN:   raw & 0xFFF,
	}
}

/// Op identifies which operation an instruction performs.
///
type Op int

const (
	OpUnknown Op = iota
	OpClear
	OpReturn
	OpJump
	OpCall
	OpSkipEqualByte
	OpSkipNotEqualByte
	OpSkipEqualReg
	OpLoadByte
	OpAddByte
	OpLoadReg
	OpOr
	OpAnd
	OpXor
	OpAddReg
	OpSub
	OpShiftRight
	OpSubReverse
	OpShiftLeft
	OpSkipNotEqualReg
	OpLoadIndex
	OpJumpOffset
	OpRandom
	OpDraw
	OpSkipKeyDown
	OpSkipKeyUp
	OpLoadDelay
	OpWaitKey
	OpSetDelay
	OpSetSound
	OpAddIndex
	OpFont
	OpBCD
	OpStore
	OpRestore
)

var mnemonics = [...]string{
	OpUnknown:          "???",
	OpClear:            "CLS",
	OpReturn:           "RET",
	OpJump:             "JP",
	OpCall:             "CALL",
	OpSkipEqualByte:    "SE",
	OpSkipNotEqualByte: "SNE",
	OpSkipEqualReg:     "SE",
	OpLoadByte:         "LD",
	OpAddByte:          "ADD",
	OpLoadReg:          "LD",
	OpOr:               "OR",
	OpAnd:              "AND",
	OpXor:              "XOR",
	OpAddReg:           "ADD",
	OpSub:              "SUB",
	OpShiftRight:       "SHR",
	OpSubReverse:       "SUBN",
	OpShiftLeft:        "SHL",
	OpSkipNotEqualReg:  "SNE",
	OpLoadIndex:        "LD I",
	OpJumpOffset:       "JP V0",
	OpRandom:           "RND",
	OpDraw:             "DRW",
	OpSkipKeyDown:      "SKP",
	OpSkipKeyUp:        "SKNP",
	OpLoadDelay:        "LD DT",
	OpWaitKey:          "LD K",
	OpSetDelay:         "LD DT",
	OpSetSound:         "LD ST",
	OpAddIndex:         "ADD I",
	OpFont:             "LD F",
	OpBCD:              "LD B",
	OpStore:            "LD [I]",
	OpRestore:          "LD [I]",
}

/// String returns the assembler mnemonic for the operation.
///
func (op Op) String() string {
	if op < 0 || int(op) >= len(mnemonics) {
		return mnemonics[OpUnknown]
	}
	return mnemonics[op]
}

/// Classify returns the operation performed by ins, or OpUnknown if the
/// operand fields don't select a valid instruction.
///
func Classify(ins Instruction) Op {
	switch ins.Class {
	case 0x0:
		switch ins.NNN {
		case 0x0E0:
			return OpClear
		case 0x0EE:
			return OpReturn
		}
	case 0x1:
		return OpJump
	case 0x2:
		return OpCall
	case 0x3:
		return OpSkipEqualByte
	case 0x4:
		return OpSkipNotEqualByte
	case 0x5:
		if ins.N == 0x0 {
			return OpSkipEqualReg
		}
	case 0x6:
		return OpLoadByte
	case 0x7:
		return OpAddByte
	case 0x8:
		switch ins.N {
		case 0x0:
			return OpLoadReg
		case 0x1:
			return OpOr
		case 0x2:
			return OpAnd
		case 0x3:
			return OpXor
		case 0x4:
			return OpAddReg
		case 0x5:
			return OpSub
		case 0x6:
			return OpShiftRight
		case 0x7:
			return OpSubReverse
		case 0xE:
			return OpShiftLeft
		}
	case 0x9:
		if ins.N == 0x0 {
			return OpSkipNotEqualReg
		}
	case 0xA:
		return OpLoadIndex
	case 0xB:
		return OpJumpOffset
	case 0xC:
		return OpRandom
	case 0xD:
		return OpDraw
	case 0xE:
		switch ins.NN {
		case 0x9E:
			return OpSkipKeyDown
		case 0xA1:
			return OpSkipKeyUp
		}
	case 0xF:
		switch ins.NN {
		case 0x07:
			return OpLoadDelay
		case 0x0A:
			return OpWaitKey
		case 0x15:
			return OpSetDelay
		case 0x18:
			return OpSetSound
		case 0x1E:
			return OpAddIndex
		case 0x29:
			return OpFont
		case 0x33:
			return OpBCD
		case 0x55:
			return OpStore
		case 0x65:
			return OpRestore
		}
	}

	return OpUnknown
}

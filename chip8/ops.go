package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

/// Execute a decoded instruction fetched from address. The program counter
/// has already been advanced past it.
///
func (vm *Interpreter) execute(address uint16, inst Instruction) error {
	x, y := inst.X, inst.Y

	switch Classify(inst) {
	case OpClear:
		vm.cls()
	case OpReturn:
		return vm.ret(address)
	case OpJump:
		vm.jump(inst.NNN)
	case OpCall:
		return vm.call(address, inst.NNN)
	case OpSkipEqualByte:
		vm.skipIf(x, inst.NN)
	case OpSkipNotEqualByte:
		vm.skipIfNot(x, inst.NN)
	case OpSkipEqualReg:
		vm.skipIfXY(x, y)
	case OpLoadByte:
		vm.loadX(x, inst.NN)
	case OpAddByte:
		vm.addX(x, inst.NN)
	case OpLoadReg:
		vm.loadXY(x, y)
	case OpOr:
		vm.or(x, y)
	case OpAnd:
		vm.and(x, y)
	case OpXor:
		vm.xor(x, y)
	case OpAddReg:
		vm.addXY(x, y)
	case OpSub:
		vm.subXY(x, y)
	case OpShiftRight:
		vm.shr(x)
	case OpSubReverse:
		vm.subYX(x, y)
	case OpShiftLeft:
		vm.shl(x)
	case OpSkipNotEqualReg:
		vm.skipIfNotXY(x, y)
	case OpLoadIndex:
		vm.loadI(inst.NNN)
	case OpJumpOffset:
		vm.jumpV0(inst.NNN)
	case OpRandom:
		vm.rnd(x, inst.NN)
	case OpDraw:
		return vm.drw(x, y, inst.N)
	case OpSkipKeyDown:
		vm.skipIfPressed(x)
	case OpSkipKeyUp:
		vm.skipIfNotPressed(x)
	case OpLoadDelay:
		vm.loadXDT(x)
	case OpWaitKey:
		vm.loadXK(x)
	case OpSetDelay:
		vm.loadDTX(x)
	case OpSetSound:
		vm.loadSTX(x)
	case OpAddIndex:
		vm.addIX(x)
	case OpFont:
		vm.loadF(x)
	case OpBCD:
		return vm.loadB(x)
	case OpStore:
		return vm.saveRegs(x)
	case OpRestore:
		return vm.loadRegs(x)
	default:
		return &UnknownOpcodeError{Opcode: inst.Raw, Address: address}
	}

	return nil
}

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}

/// Clear the video display memory.
///
func (vm *Interpreter) cls() {
	vm.Display.Clear()
}

/// return from subroutine.
///
func (vm *Interpreter) ret(address uint16) error {
	pc, err := vm.Stack.Pop()
	if err != nil {
		return &StackError{Address: address, Err: err}
	}

	vm.PC = pc
	return nil
}

/// call a subroutine at address.
///
func (vm *Interpreter) call(address, target uint16) error {
	if err := vm.Stack.Push(vm.PC); err != nil {
		return &StackError{Address: address, Err: err}
	}

	vm.PC = target
	return nil
}

/// jump to address.
///
func (vm *Interpreter) jump(address uint16) {
	vm.PC = address
}

/// jump to address + v0. There is no BXNN variant using vx.
///
func (vm *Interpreter) jumpV0(address uint16) {
	vm.PC = address + uint16(vm.V[0])
}

/// skip next instruction if vx == n.
///
func (vm *Interpreter) skipIf(x, b byte) {
	if vm.V[x] == b {
		vm.PC += 2
	}
}

/// skip next instruction if vx != n.
///
func (vm *Interpreter) skipIfNot(x, b byte) {
	if vm.V[x] != b {
		vm.PC += 2
	}
}

/// skip next instruction if vx == vy.
///
func (vm *Interpreter) skipIfXY(x, y byte) {
	if vm.V[x] == vm.V[y] {
		vm.PC += 2
	}
}

/// skip next instruction if vx != vy.
///
func (vm *Interpreter) skipIfNotXY(x, y byte) {
	if vm.V[x] != vm.V[y] {
		vm.PC += 2
	}
}

/// skip next instruction if key(vx) is pressed.
///
func (vm *Interpreter) skipIfPressed(x byte) {
	if vm.Keypad.IsDown(vm.V[x] & 0xF) {
		vm.PC += 2
	}
}

/// skip next instruction if key(vx) is not pressed.
///
func (vm *Interpreter) skipIfNotPressed(x byte) {
	if !vm.Keypad.IsDown(vm.V[x] & 0xF) {
		vm.PC += 2
	}
}

/// load n into vx.
///
func (vm *Interpreter) loadX(x, b byte) {
	vm.V[x] = b
}

/// load y into vx.
///
func (vm *Interpreter) loadXY(x, y byte) {
	vm.V[x] = vm.V[y]
}

/// load delay timer into vx.
///
func (vm *Interpreter) loadXDT(x byte) {
	vm.V[x] = vm.DT
}

/// load vx into delay timer.
///
func (vm *Interpreter) loadDTX(x byte) {
	vm.DT = vm.V[x]
}

/// load vx into sound timer.
///
func (vm *Interpreter) loadSTX(x byte) {
	vm.ST = vm.V[x]
}

/// load vx with a key (blocking).
///
/// Unlike the usual "wait for the next press", the key that is down when
/// the instruction is reached is captured, and vx is only written once
/// that key has been released. With no key down the instruction simply
/// runs again on the next cycle. Some programs rely on the release
/// behaviour to avoid reading one press several times.
///
func (vm *Interpreter) loadXK(x byte) {
	key, ok := vm.Keypad.FirstDown()
	if !ok {
		vm.PC -= 2
		return
	}

	vm.Keypad.waiting = true
	vm.Keypad.register = x
	vm.Keypad.down = key

	vm.logger.Debug("Waiting for key release",
		log.String("register", fmt.Sprintf("V%X", x)),
		log.String("key", fmt.Sprintf("%X", key)))
}

/// commit the captured key once it has been released.
///
func (vm *Interpreter) pollKey() {
	if vm.Keypad.IsDown(vm.Keypad.down) {
		return
	}

	vm.V[vm.Keypad.register] = vm.Keypad.down
	vm.Keypad.waiting = false

	vm.logger.Debug("Key released",
		log.String("key", fmt.Sprintf("%X", vm.Keypad.down)))
}

/// load address register.
///
func (vm *Interpreter) loadI(address uint16) {
	vm.I = address
}

/// load address with BCD of vx.
///
func (vm *Interpreter) loadB(x byte) error {
	dst, err := vm.Memory.Slice(vm.I, 3)
	if err != nil {
		return err
	}

	n := vm.V[x]
	dst[0] = n / 100
	dst[1] = n / 10 % 10
	dst[2] = n % 10

	return nil
}

/// load font sprite for vx into I.
///
func (vm *Interpreter) loadF(x byte) {
	vm.I = uint16(vm.V[x]) * GlyphSize
}

/// or vx with vy into vx.
///
func (vm *Interpreter) or(x, y byte) {
	vm.V[x] |= vm.V[y]
}

/// and vx with vy into vx.
///
func (vm *Interpreter) and(x, y byte) {
	vm.V[x] &= vm.V[y]
}

/// xor vx with vy into vx.
///
func (vm *Interpreter) xor(x, y byte) {
	vm.V[x] ^= vm.V[y]
}

/// shl vx 1 bit, set carry to MSB of vx before shift. vy is ignored.
///
func (vm *Interpreter) shl(x byte) {
	c := vm.V[x] >> 7
	vm.V[x] <<= 1
	vm.V[0xF] = c
}

/// shr vx 1 bit, set carry to LSB of vx before shift. vy is ignored.
///
func (vm *Interpreter) shr(x byte) {
	c := vm.V[x] & 1
	vm.V[x] >>= 1
	vm.V[0xF] = c
}

/// add n to vx, carry is not affected.
///
func (vm *Interpreter) addX(x, b byte) {
	vm.V[x] += b
}

/// add vy to vx and set carry.
///
func (vm *Interpreter) addXY(x, y byte) {
	sum := uint16(vm.V[x]) + uint16(vm.V[y])

	vm.V[x] = byte(sum)
	vm.V[0xF] = flag(sum > 0xFF)
}

/// add vx to i, set carry if the 16-bit register overflows.
///
func (vm *Interpreter) addIX(x byte) {
	sum := uint32(vm.I) + uint32(vm.V[x])

	vm.I = uint16(sum)
	vm.V[0xF] = flag(sum > 0xFFFF)
}

/// subtract vy from vx, set carry if no borrow.
///
func (vm *Interpreter) subXY(x, y byte) {
	c := flag(vm.V[x] >= vm.V[y])

	vm.V[x] -= vm.V[y]
	vm.V[0xF] = c
}

/// subtract vx from vy and store in vx, set carry if no borrow.
///
func (vm *Interpreter) subYX(x, y byte) {
	c := flag(vm.V[y] >= vm.V[x])

	vm.V[x] = vm.V[y] - vm.V[x]
	vm.V[0xF] = c
}

/// load a random number & n into vx.
///
func (vm *Interpreter) rnd(x, b byte) {
	vm.V[x] = vm.random() & b
}

/// draw a sprite at I to video memory at vx, vy. Pixels that fall off the
/// edge of the screen wrap around to the other side.
///
func (vm *Interpreter) drw(x, y, n byte) error {
	sprite, err := vm.Memory.Slice(vm.I, int(n))
	if err != nil {
		return err
	}

	ox := int(vm.V[x])
	oy := int(vm.V[y])

	c := false

	// draw each row of the sprite
	for row, s := range sprite {
		py := (oy + row) % Height

		for col := 0; col < 8; col++ {
			if s&(0x80>>col) == 0 {
				continue
			}

			// were any pixels turned off?
			if vm.Display.Toggle((ox+col)%Width, py) {
				c = true
			}
		}
	}

	vm.V[0xF] = flag(c)

	return nil
}

/// save registers v0..vx to I.
///
func (vm *Interpreter) saveRegs(x byte) error {
	dst, err := vm.Memory.Slice(vm.I, int(x)+1)
	if err != nil {
		return err
	}

	copy(dst, vm.V[:x+1])
	return nil
}

/// load registers v0..vx from I.
///
func (vm *Interpreter) loadRegs(x byte) error {
	src, err := vm.Memory.Slice(vm.I, int(x)+1)
	if err != nil {
		return err
	}

	copy(vm.V[:x+1], src)
	return nil
}

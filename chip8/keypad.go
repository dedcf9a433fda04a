package chip8

/// KeyCount is the number of keys on the hex keypad.
///
const KeyCount = 16

/// Keypad is the 16-key hexadecimal keypad, plus the state used by the
/// wait for key instruction (FX0A).
///
/// The original layout is:
///
/// 	1 2 3 C
/// 	4 5 6 D
/// 	7 8 9 E
/// 	A 0 B F
///
type Keypad struct {
	keys [KeyCount]bool

	/// waiting is set while FX0A is holding up execution. register is the
	/// V-register that receives the key, down is the key that was captured.
	///
	waiting  bool
	register uint8
	down     uint8
}

/// IsDown returns true if key is currently pressed. Keys outside of 0x0-0xF
/// are never down.
///
func (k *Keypad) IsDown(key uint8) bool {
	if key >= KeyCount {
		return false
	}
	return k.keys[key]
}

/// SetDown sets the pressed state of key. Keys outside of 0x0-0xF are ignored.
///
func (k *Keypad) SetDown(key uint8, down bool) {
	if key < KeyCount {
		k.keys[key] = down
	}
}

/// FirstDown returns the lowest numbered key that is currently pressed.
///
func (k *Keypad) FirstDown() (uint8, bool) {
	for i, down := range k.keys {
		if down {
			return uint8(i), true
		}
	}
	return 0, false
}

/// Waiting returns true while a wait for key instruction is in progress.
///
func (k *Keypad) Waiting() bool {
	return k.waiting
}

/// Reset releases every key and cancels a key wait.
///
func (k *Keypad) Reset() {
	*k = Keypad{}
}

package main

import (
	"errors"

	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// Mapping of modern keyboard to CHIP-8 keys.
	///
	KeyMap = map[sdl.Scancode]uint8{
		sdl.SCANCODE_X: 0x0,
		sdl.SCANCODE_1: 0x1,
		sdl.SCANCODE_2: 0x2,
		sdl.SCANCODE_3: 0x3,
		sdl.SCANCODE_Q: 0x4,
		sdl.SCANCODE_W: 0x5,
		sdl.SCANCODE_E: 0x6,
		sdl.SCANCODE_A: 0x7,
		sdl.SCANCODE_S: 0x8,
		sdl.SCANCODE_D: 0x9,
		sdl.SCANCODE_Z: 0xA,
		sdl.SCANCODE_C: 0xB,
		sdl.SCANCODE_4: 0xC,
		sdl.SCANCODE_R: 0xD,
		sdl.SCANCODE_F: 0xE,
		sdl.SCANCODE_V: 0xF,
	}
)

/// ProcessEvents from SDL and map keys to the CHIP-8 VM.
///
func ProcessEvents() bool {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			key, ok := KeyMap[ev.Keysym.Scancode]

			switch {
			case ok && ev.Type == sdl.KEYDOWN:
				VM.SetKey(key, true)
			case ok && ev.Type == sdl.KEYUP:
				VM.SetKey(key, false)
			case ev.Type == sdl.KEYDOWN && ev.Repeat == 0:
				Command(ev.Keysym.Scancode, ev.Keysym.Mod&sdl.KMOD_CTRL != 0)
			}
		}
	}

	return true
}

/// Command handles the emulator keys that aren't mapped to the keypad.
///
func Command(code sdl.Scancode, ctrl bool) {
	switch code {
	case sdl.SCANCODE_ESCAPE:
		File = ""

		// go back to the boot program
		Log.Logln("Unloading ROM")
		Load()
	case sdl.SCANCODE_BACKSPACE:
		Reset()

		// holding control during reset will reboot paused
		if ctrl {
			Paused = true
		}
	case sdl.SCANCODE_UP, sdl.SCANCODE_PAGEUP:
		Log.ScrollUp()
	case sdl.SCANCODE_DOWN, sdl.SCANCODE_PAGEDOWN:
		Log.ScrollDown()
	case sdl.SCANCODE_HOME:
		Log.Home()
	case sdl.SCANCODE_END:
		Log.End()
	case sdl.SCANCODE_F2:
		Load()
	case sdl.SCANCODE_F3:
		LoadDialog()
	case sdl.SCANCODE_H, sdl.SCANCODE_F1:
		Help()
	case sdl.SCANCODE_LEFTBRACKET:
		ChangeSpeed(-1)
	case sdl.SCANCODE_RIGHTBRACKET:
		ChangeSpeed(1)
	case sdl.SCANCODE_F5, sdl.SCANCODE_SPACE:
		TogglePause()
	}
}

/// TogglePause suspends or resumes emulation. A halted program can't be
/// resumed, only reset.
///
func TogglePause() {
	if Fault != nil {
		Log.Log("Program halted")
		return
	}

	Paused = !Paused
}

/// ChangeSpeed doubles or halves the number of instructions run per frame.
///
func ChangeSpeed(dir int) {
	n := VM.CyclesPerFrame()

	if dir < 0 {
		n /= 2
	} else {
		n *= 2
	}

	// keep it within a sane range
	if n > maxCyclesPerFrame {
		n = maxCyclesPerFrame
	}

	VM.SetCyclesPerFrame(n)
	Log.Logf("Speed: %d cycles/frame", VM.CyclesPerFrame())
}

const maxCyclesPerFrame = 1024

/// LoadDialog opens a file dialog and loads the chosen ROM.
///
func LoadDialog() {
	path, err := dialog.File().Filter("CHIP-8 ROM", "ch8", "c8").Title("Load ROM").Load()
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			logger.Error("Opening file dialog", err)
		}
		return
	}

	File = path
	Load()
}

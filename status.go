package main

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

/// LogLines is the number of message log lines visible at once.
///
const LogLines = 16

/// Help shows the key bindings in the log.
///
func Help() {
	Log.Logln("Virtual keys:")
	Log.Log("  1-2-3-4")
	Log.Log("  Q-W-E-R")
	Log.Log("  A-S-D-F")
	Log.Log("  Z-X-C-V")
	Log.Log("")
	Log.Log("Emulation keys:")
	Log.Log("  ESC      - Unload ROM")
	Log.Log("  BS       - Reset (CTRL to pause)")
	Log.Log("  SPACE/F5 - Pause")
	Log.Log("  [ / ]    - Slower / faster")
	Log.Log("  F2       - Reload ROM")
	Log.Log("  F3       - Load ROM")
	Log.Log("  Up/Down  - Scroll log")
	Log.Log("  Home/End - Log start/end")
}

/// StatusRegisters shows the current value of all the CHIP-8 registers.
///
func StatusRegisters(x, y int32) {
	for i := int32(0); i < 16; i++ {
		DrawText(fmt.Sprintf("V%X - #%02X", i, VM.V[i]), x, y+i*10)
	}

	// shift over for the other registers
	x += 84

	DrawText(fmt.Sprintf("PC - #%04X", VM.PC), x, y)
	DrawText(fmt.Sprintf("SP - %d", VM.Stack.Len()), x, y+10)
	DrawText(fmt.Sprintf("I  - #%04X", VM.I), x, y+30)
	DrawText(fmt.Sprintf("DT - #%02X", VM.DT), x, y+50)
	DrawText(fmt.Sprintf("ST - #%02X", VM.ST), x, y+60)
	DrawText(fmt.Sprintf("CPF - %d", VM.CyclesPerFrame()), x, y+80)

	switch {
	case Fault != nil:
		statusBadge("HALTED", x, y+100, 176, 32, 57)
	case Paused:
		statusBadge("PAUSED", x, y+100, 176, 32, 57)
	case VM.Waiting():
		statusBadge("KEY", x, y+100, 57, 102, 176)
	}
}

func statusBadge(s string, x, y int32, r, g, b uint8) {
	Renderer.SetDrawColor(r, g, b, 255)
	Renderer.FillRect(&sdl.Rect{
		X: x - 2,
		Y: y - 2,
		W: int32(len(s))*7 + 2,
		H: 11,
	})

	DrawText(s, x, y)
}

/// StatusLog shows the visible window of the message log.
///
func StatusLog(x, y int32) {
	for _, line := range Log.Window() {
		if len(line) >= 75 {
			DrawText(line[:72]+"...", x, y)
		} else {
			DrawText(line, x, y)
		}

		// advance to the next line
		y += 10
	}
}

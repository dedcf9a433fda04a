package main

import (
	"github.com/chip8vm/chip8/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	Screen *sdl.Texture
)

/// InitScreen creates the render target for the CHIP-8 video memory.
///
func InitScreen() error {
	var err error

	// create a render target for the display
	Screen, err = Renderer.CreateTexture(sdl.PIXELFORMAT_RGB888, sdl.TEXTUREACCESS_TARGET, chip8.Width, chip8.Height)
	return err
}

/// RefreshScreen with the CHIP-8 video memory. Nothing is redrawn unless
/// the display changed since the last refresh.
///
func RefreshScreen() {
	if !VM.Display.Dirty() {
		return
	}

	if err := Renderer.SetRenderTarget(Screen); err != nil {
		logger.Error("Setting render target", err)
		return
	}

	// the background color for the screen
	Renderer.SetDrawColor(143, 145, 133, 255)
	Renderer.Clear()

	// set the pixel color
	Renderer.SetDrawColor(17, 29, 43, 255)

	// draw all the pixels
	for y := 0; y < chip8.Height; y++ {
		for x := 0; x < chip8.Width; x++ {
			if VM.Display.Get(x, y) {
				Renderer.DrawPoint(int32(x), int32(y))
			}
		}
	}

	// restore the render target
	Renderer.SetRenderTarget(nil)

	VM.Display.ClearDirty()
}

/// CopyScreen to the render target, each CHIP-8 pixel scaled to a square.
///
func CopyScreen(x, y, scale int32) {
	src := sdl.Rect{
		W: chip8.Width,
		H: chip8.Height,
	}

	// stretch the render target to fit
	Renderer.Copy(Screen, &src, &sdl.Rect{X: x, Y: y, W: chip8.Width * scale, H: chip8.Height * scale})
}

package main

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// Texture containing a predefined font for the status panels.
	///
	Font *sdl.Texture

	/// FontFile is the bitmap holding the glyphs.
	///
	FontFile = "data/font.bmp"
)

/// InitFont loads the bitmap surface with font on it. Without it, the
/// emulator still runs but no text is drawn.
///
func InitFont() {
	surface, err := sdl.LoadBMP(FontFile)
	if err != nil {
		logger.Error("Loading font, text disabled", err, log.String("file", FontFile))
		return
	}
	defer surface.Free()

	// get the magenta color
	mask := sdl.MapRGB(surface.Format, 255, 0, 255)

	// set the mask color key
	surface.SetColorKey(true, mask)

	// create the texture
	if Font, err = Renderer.CreateTextureFromSurface(surface); err != nil {
		logger.Error("Creating font texture", err)
	}
}

/// DrawText using the loaded font.
///
func DrawText(s string, x, y int32) {
	if Font == nil {
		return
	}

	src := sdl.Rect{W: 5, H: 7}
	dst := sdl.Rect{
		X: x,
		Y: y,
		W: 5,
		H: 7,
	}

	// loop over all the characters in the string
	for _, c := range s {
		if c > 32 && c < 127 {
			src.X = (c - 33) * 6

			// draw the character to the renderer
			Renderer.Copy(Font, &src, &dst)
		}

		// advance
		dst.X += 7
	}
}

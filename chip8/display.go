package chip8

const (
	/// Width of the display in pixels.
	///
	Width = 64

	/// Height of the display in pixels.
	///
	Height = 32
)

/// Display is the 64x32 monochrome video memory. Pixels are stored row major.
///
type Display struct {
	pixels [Width * Height]bool

	/// dirty is set whenever a pixel changes.
	///
	dirty bool
}

/// index returns the offset of the pixel at <x,y>, or false if it is off
/// the screen.
///
func index(x, y int) (int, bool) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0, false
	}
	return x + y*Width, true
}

/// Clear turns every pixel off.
///
func (d *Display) Clear() {
	d.pixels = [Width * Height]bool{}
	d.dirty = true
}

/// Get returns the state of the pixel at <x,y>. Pixels off the screen are
/// always off.
///
func (d *Display) Get(x, y int) bool {
	i, ok := index(x, y)
	return ok && d.pixels[i]
}

/// Set turns the pixel at <x,y> on or off. Pixels off the screen are ignored.
///
func (d *Display) Set(x, y int, on bool) {
	i, ok := index(x, y)
	if !ok {
		return
	}

	d.pixels[i] = on
	d.dirty = true
}

/// Toggle flips the pixel at <x,y> and returns true if it was turned off.
/// Pixels off the screen are ignored. Callers wrap sprite coordinates first.
///
func (d *Display) Toggle(x, y int) bool {
	i, ok := index(x, y)
	if !ok {
		return false
	}
	was := d.pixels[i]

	d.pixels[i] = !was
	d.dirty = true

	return was
}

/// Dirty returns true if the display changed since ClearDirty was last called.
///
func (d *Display) Dirty() bool {
	return d.dirty
}

/// ClearDirty acknowledges the current contents of the display.
///
func (d *Display) ClearDirty() {
	d.dirty = false
}

/// Reset turns every pixel off.
///
func (d *Display) Reset() {
	d.Clear()
}

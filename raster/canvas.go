// Package raster paints a tcell cell grid into an RGBA image
// Text uses tinyfont bitmap fonts, box and block runes are drawn as shapes
package raster

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Canvas)(nil)

// Canvas is an RGBA pixel buffer usable as a tinyfont display
type Canvas struct {
	img *image.RGBA
	// Pixels changed since the last TakeDirty
	dirty bool
}

// NewCanvas allocates a w x h canvas
func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h)), dirty: true}
}

// Resize reallocates when the size changed
func (c *Canvas) Resize(w, h int) {
	b := c.img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	c.dirty = true
}

// TakeDirty reports whether pixels changed since the previous call and resets the flag
func (c *Canvas) TakeDirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}

// Image returns the backing image
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size implements drivers.Displayer
func (c *Canvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// SetPixel implements drivers.Displayer
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.set(int(x), int(y), col)
}

// Display implements drivers.Displayer; the owner uploads Image itself
func (c *Canvas) Display() error {
	return nil
}

func (c *Canvas) set(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = col.R, col.G, col.B, col.A
	c.dirty = true
}

// At returns the pixel at (x, y)
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// FillRect fills a rectangle clipped to the canvas
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(c.img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			c.set(px, py, col)
		}
	}
}

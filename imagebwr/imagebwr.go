package imagebwr

import (
	"image"
	"image/color"
)

// Color is one of the three states a black/white/red panel pixel can show.
type Color uint8

const (
	White Color = iota // bare paper, no ink
	Black
	Red
)

// RGBA implements color.Color. Unknown values render as white.
func (c Color) RGBA() (r, g, b, a uint32) {
	switch c {
	case Black:
		return 0, 0, 0, 0xFFFF
	case Red:
		return 0xFFFF, 0, 0, 0xFFFF
	default:
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case Red:
		return "red"
	default:
		return "invalid"
	}
}

// toColor converts any color.Color to the nearest ink.
func toColor(c color.Color) color.Color {
	if bwr, ok := c.(Color); ok {
		return bwr
	}
	r, g, b, a := c.RGBA()
	// Mostly transparent pixels leave the paper untouched.
	if a < 0x8000 {
		return White
	}
	if r >= 0x8000 && g < 0x8000 && b < 0x8000 {
		return Red
	}
	// Standard grayscale conversion: 0.299R + 0.587G + 0.114B
	y := (299*r + 587*g + 114*b + 500) / 1000
	if y < 0x8000 {
		return Black
	}
	return White
}

// Model converts colors to Color.
var Model = color.ModelFunc(toColor)

// Planar is a black/white/red image stored as two packed bit planes.
// A set bit means the ink is present. Red takes precedence over black when
// both bits are set.
type Planar struct {
	Black  []byte          // Black plane (8 pixels per byte, MSB first)
	Red    []byte          // Red plane, same layout as Black
	Stride int             // Bytes per row in each plane
	Rect   image.Rectangle // Image bounds
}

// NewPlanar creates a new, all-white Planar image with the specified bounds.
// Rows are padded to a whole number of bytes.
func NewPlanar(r image.Rectangle) *Planar {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Planar{Rect: r}
	}

	stride := (w + 7) / 8
	return &Planar{
		Black:  make([]byte, stride*h),
		Red:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Planar) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Planar) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Planar) At(x, y int) color.Color {
	return p.ColorAt(x, y)
}

// ColorAt returns the Color of the pixel at (x, y).
// Pixels outside the bounds are White.
func (p *Planar) ColorAt(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return White
	}
	offset, mask := p.pixOffset(x, y)
	switch {
	case p.Red[offset]&mask != 0:
		return Red
	case p.Black[offset]&mask != 0:
		return Black
	default:
		return White
	}
}

// Set sets the color of the pixel at (x, y).
func (p *Planar) Set(x, y int, c color.Color) {
	p.SetColor(x, y, Model.Convert(c).(Color))
}

// SetColor sets the Color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *Planar) SetColor(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	p.Black[offset] &^= mask
	p.Red[offset] &^= mask
	switch c {
	case Black:
		p.Black[offset] |= mask
	case Red:
		p.Red[offset] |= mask
	}
}

// Clear resets every pixel to White.
func (p *Planar) Clear() {
	clear(p.Black)
	clear(p.Red)
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// The leftmost pixel of each byte is its most significant bit.
func (p *Planar) pixOffset(x, y int) (offset int, mask byte) {
	dx := x - p.Rect.Min.X
	offset = (y-p.Rect.Min.Y)*p.Stride + dx/8
	mask = 0x80 >> uint(dx&7)
	return
}

package pricechart

import (
	"image"
	"image/color"
	"image/draw"
)

// Ink is one of the two inks a bichromatic panel can put on paper.
type Ink uint8

const (
	Base   Ink = iota // black on a black/white/red panel
	Accent            // red on a black/white/red panel
)

func (i Ink) String() string {
	if i == Accent {
		return "accent"
	}
	return "base"
}

// Canvas is the pixel sink the renderers draw on.
// Writes outside Bounds must be ignored.
type Canvas interface {
	Bounds() image.Rectangle
	SetInk(x, y int, ink Ink)
}

// ImageCanvas adapts a draw.Image to Canvas.
type ImageCanvas struct {
	Dst    draw.Image
	Base   color.Color
	Accent color.Color
}

// Bounds returns the bounds of the destination image.
func (c *ImageCanvas) Bounds() image.Rectangle {
	return c.Dst.Bounds()
}

// SetInk sets the pixel at (x, y) to the color of ink.
func (c *ImageCanvas) SetInk(x, y int, ink Ink) {
	if !(image.Point{X: x, Y: y}.In(c.Dst.Bounds())) {
		return
	}
	if ink == Accent {
		c.Dst.Set(x, y, c.Accent)
		return
	}
	c.Dst.Set(x, y, c.Base)
}

package pricechart

import (
	"image"
	"image/color"
	"testing"
)

func TestImageCanvas(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	red := color.RGBA{0xFF, 0, 0, 0xFF}
	c := &ImageCanvas{Dst: dst, Base: color.Black, Accent: red}

	c.SetInk(1, 1, Accent)
	c.SetInk(2, 2, Base)
	c.SetInk(-1, 9, Accent)

	if got := dst.RGBAAt(1, 1); got != red {
		t.Errorf("accent pixel = %v, want %v", got, red)
	}
	if got := dst.RGBAAt(2, 2); got != (color.RGBA{0, 0, 0, 0xFF}) {
		t.Errorf("base pixel = %v, want black", got)
	}
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("untouched pixel = %v, want zero", got)
	}
	if c.Bounds() != dst.Bounds() {
		t.Errorf("Bounds() = %v, want %v", c.Bounds(), dst.Bounds())
	}
}

func TestInkString(t *testing.T) {
	if Base.String() != "base" || Accent.String() != "accent" {
		t.Errorf("String() = %q, %q", Base.String(), Accent.String())
	}
}

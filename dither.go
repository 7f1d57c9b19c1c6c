package pricechart

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	// Registered so DecodeDitherMask accepts PNG threshold maps.
	_ "image/png"
)

// DitherMask is a table of ordered-dithering thresholds indexed [y][x].
// It is tiled across the canvas, so the pattern for a given pixel never
// changes between renders.
type DitherMask [][]uint8

// Bayer8 is the default mask: the 8×8 Bayer matrix scaled to thresholds
// 0..252. Intensity i lights roughly i/256 of the pixels.
var Bayer8 = DitherMask{
	{0, 128, 32, 160, 8, 136, 40, 168},
	{192, 64, 224, 96, 200, 72, 232, 104},
	{48, 176, 16, 144, 56, 184, 24, 152},
	{240, 112, 208, 80, 248, 120, 216, 88},
	{12, 140, 44, 172, 4, 132, 36, 164},
	{204, 76, 236, 108, 196, 68, 228, 100},
	{60, 188, 28, 156, 52, 180, 20, 148},
	{252, 124, 220, 92, 244, 116, 212, 84},
}

// NewDitherMask validates rows and returns them as a mask. Rows must be
// non-empty and of equal length.
func NewDitherMask(rows [][]uint8) (DitherMask, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("pricechart: dither mask is empty")
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("pricechart: dither mask row %d has %d thresholds, want %d", y, len(row), w)
		}
	}
	return DitherMask(rows), nil
}

// DecodeDitherMask reads a threshold map from an image, typically a grayscale
// PNG of a blue-noise or Bayer pattern. Each pixel's luminance becomes its
// threshold.
func DecodeDitherMask(r io.Reader) (DitherMask, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pricechart: decode dither mask: %w", err)
	}
	b := img.Bounds()
	rows := make([][]uint8, b.Dy())
	for y := range rows {
		rows[y] = make([]uint8, b.Dx())
		for x := range rows[y] {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			rows[y][x] = g.Y
		}
	}
	return NewDitherMask(rows)
}

// Width returns the horizontal period of the mask.
func (m DitherMask) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the vertical period of the mask.
func (m DitherMask) Height() int {
	return len(m)
}

// Accent reports whether the pixel at (x, y) should use the accent ink for the
// given intensity. An empty mask never selects the accent ink.
func (m DitherMask) Accent(x, y int, intensity uint8) bool {
	w, h := m.Width(), m.Height()
	if w == 0 || h == 0 {
		return false
	}
	return intensity > m[wrap(y, h)][wrap(x, w)]
}

// wrap returns v modulo n in [0, n).
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

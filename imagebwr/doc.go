// Package imagebwr provides a black/white/red image format for bichromatic
// e-paper panels.
//
// Black/white/red panels take a frame as two independent bit planes: one for
// black ink and one for red ink. A pixel with neither bit set shows the white
// paper. Pixels are packed eight per byte, most significant bit first, and each
// row is padded to a whole byte.
//
// Memory layout example for a 10-pixel row:
//
//	Pixels: 0 1 2 3 4 5 6 7 | 8 9
//	Colors: K . . R . . . K | . R     (K = black, R = red, . = white)
//	Black:  0x81             0x00
//	Red:    0x10             0x40
//
// This package provides:
//
// - Color: White, Black or Red
// - Model: a color model mapping arbitrary colors to the nearest ink
// - Planar: an image.Image and draw.Image implementation holding both planes
//
// Example usage:
//
//	img := imagebwr.NewPlanar(image.Rect(0, 0, 250, 122))
//	img.SetColor(10, 20, imagebwr.Red)
//	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
package imagebwr

package imagebwr

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name    string
		c       Color
		r, g, b uint32
	}{
		{"white", White, 0xFFFF, 0xFFFF, 0xFFFF},
		{"black", Black, 0, 0, 0},
		{"red", Red, 0xFFFF, 0, 0},
		{"invalid renders white", Color(7), 0xFFFF, 0xFFFF, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.r || g != tt.g || b != tt.b || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, ffff)",
					r, g, b, a, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Color
	}{
		{"passthrough", Red, Red},
		{"black", color.Black, Black},
		{"white", color.White, White},
		{"pure red", color.RGBA{0xFF, 0, 0, 0xFF}, Red},
		{"dark red", color.RGBA{0x90, 0x10, 0x10, 0xFF}, Red},
		{"dark gray", color.RGBA{0x40, 0x40, 0x40, 0xFF}, Black},
		{"light gray", color.RGBA{0xC0, 0xC0, 0xC0, 0xFF}, White},
		{"transparent", color.Transparent, White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Model.Convert(tt.input).(Color)
			if got != tt.want {
				t.Errorf("Model.Convert(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewPlanar(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantStride int
		wantPixLen int
	}{
		{"250x122", image.Rect(0, 0, 250, 122), 32, 32 * 122},
		{"8x2", image.Rect(0, 0, 8, 2), 1, 2},
		{"9x2 pads row", image.Rect(0, 0, 9, 2), 2, 4},
		{"offset rect", image.Rect(10, 20, 26, 22), 2, 4},
		{"empty", image.Rect(0, 0, 0, 0), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewPlanar(tt.rect)
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Black) != tt.wantPixLen || len(img.Red) != tt.wantPixLen {
				t.Errorf("len(Black), len(Red) = %d, %d, want %d",
					len(img.Black), len(img.Red), tt.wantPixLen)
			}
		})
	}
}

func TestPlanarBitPacking(t *testing.T) {
	img := NewPlanar(image.Rect(0, 0, 10, 1))

	img.SetColor(0, 0, Black)
	img.SetColor(3, 0, Red)
	img.SetColor(7, 0, Black)
	img.SetColor(9, 0, Red)

	if img.Black[0] != 0x81 {
		t.Errorf("Black[0] = 0x%02X, want 0x81", img.Black[0])
	}
	if img.Red[0] != 0x10 {
		t.Errorf("Red[0] = 0x%02X, want 0x10", img.Red[0])
	}
	if img.Black[1] != 0x00 {
		t.Errorf("Black[1] = 0x%02X, want 0x00", img.Black[1])
	}
	if img.Red[1] != 0x40 {
		t.Errorf("Red[1] = 0x%02X, want 0x40", img.Red[1])
	}
}

func TestPlanarSetGet(t *testing.T) {
	img := NewPlanar(image.Rect(0, 0, 3, 2))

	pattern := [][3]Color{
		{White, Black, Red},
		{Red, White, Black},
	}
	for y, row := range pattern {
		for x, c := range row {
			img.SetColor(x, y, c)
		}
	}

	for y, row := range pattern {
		for x, want := range row {
			if got := img.ColorAt(x, y); got != want {
				t.Errorf("ColorAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPlanarOverwrite(t *testing.T) {
	img := NewPlanar(image.Rect(0, 0, 8, 1))

	img.SetColor(2, 0, Red)
	img.SetColor(2, 0, Black)
	if got := img.ColorAt(2, 0); got != Black {
		t.Errorf("after Red then Black, ColorAt = %v, want black", got)
	}
	if img.Red[0] != 0 {
		t.Errorf("Red[0] = 0x%02X, want 0 after overwrite", img.Red[0])
	}

	img.SetColor(2, 0, White)
	if img.Black[0] != 0 {
		t.Errorf("Black[0] = 0x%02X, want 0 after White", img.Black[0])
	}
}

func TestPlanarRedWinsOverBlack(t *testing.T) {
	img := NewPlanar(image.Rect(0, 0, 8, 1))
	img.Black[0] = 0xFF
	img.Red[0] = 0x01

	if got := img.ColorAt(7, 0); got != Red {
		t.Errorf("ColorAt(7, 0) = %v, want red", got)
	}
	if got := img.ColorAt(0, 0); got != Black {
		t.Errorf("ColorAt(0, 0) = %v, want black", got)
	}
}

func TestPlanarSetConverts(t *testing.T) {
	img := NewPlanar(image.Rect(0, 0, 2, 1))

	img.Set(0, 0, color.RGBA{0xFF, 0, 0, 0xFF})
	img.Set(1, 0, color.Black)

	if got := img.ColorAt(0, 0); got != Red {
		t.Errorf("ColorAt(0, 0) = %v, want red", got)
	}
	if c, ok := img.At(1, 0).(Color); !ok || c != Black {
		t.Errorf("At(1, 0) = %v, want black", img.At(1, 0))
	}
}

func TestPlanarOutOfBounds(t *testing.T) {
	img := NewPlanar(image.Rect(0, 0, 8, 8))

	img.SetColor(-1, 0, Black)
	img.SetColor(0, -1, Black)
	img.SetColor(8, 0, Red)
	img.SetColor(0, 8, Red)

	for i := range img.Black {
		if img.Black[i] != 0 || img.Red[i] != 0 {
			t.Fatalf("out-of-bounds write changed byte %d", i)
		}
	}
	if got := img.ColorAt(-1, 0); got != White {
		t.Errorf("ColorAt(-1, 0) = %v, want white", got)
	}
}

func TestPlanarOffsetRect(t *testing.T) {
	img := NewPlanar(image.Rect(100, 50, 116, 52))

	img.SetColor(100, 50, Black)
	img.SetColor(108, 51, Red)

	if img.Black[0] != 0x80 {
		t.Errorf("Black[0] = 0x%02X, want 0x80", img.Black[0])
	}
	if img.Red[3] != 0x80 {
		t.Errorf("Red[3] = 0x%02X, want 0x80", img.Red[3])
	}
}

func TestPlanarPixOffset(t *testing.T) {
	img := NewPlanar(image.Rect(0, 0, 16, 2))

	tests := []struct {
		x, y   int
		offset int
		mask   byte
	}{
		{0, 0, 0, 0x80},
		{7, 0, 0, 0x01},
		{8, 0, 1, 0x80},
		{0, 1, 2, 0x80},
		{15, 1, 3, 0x01},
	}

	for _, tt := range tests {
		offset, mask := img.pixOffset(tt.x, tt.y)
		if offset != tt.offset || mask != tt.mask {
			t.Errorf("pixOffset(%d, %d) = (%d, 0x%02X), want (%d, 0x%02X)",
				tt.x, tt.y, offset, mask, tt.offset, tt.mask)
		}
	}
}

func TestPlanarDrawAndClear(t *testing.T) {
	img := NewPlanar(image.Rect(0, 0, 8, 2))
	draw.Draw(img, img.Bounds(), image.NewUniform(Red), image.Point{}, draw.Src)

	for y := 0; y < 2; y++ {
		for x := 0; x < 8; x++ {
			if got := img.ColorAt(x, y); got != Red {
				t.Fatalf("ColorAt(%d, %d) = %v after fill, want red", x, y, got)
			}
		}
	}

	img.Clear()
	if got := img.ColorAt(3, 1); got != White {
		t.Errorf("ColorAt(3, 1) = %v after Clear, want white", got)
	}
}

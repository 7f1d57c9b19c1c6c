package pricechart

import "math"

// unset marks a gradient bound that was not configured.
const unset = math.MaxInt

// BarOpts configures a BarRenderer.
type BarOpts struct {
	// Rows where the accent gradient is fully saturated (GradientTop) and
	// where it has faded out completely (GradientBottom). Values are rounded
	// to the nearest row. ±Inf or NaN leaves a bound unset.
	GradientTop    float64
	GradientBottom float64

	BaseY    int // Row the bars grow from
	YLimit   int // First row that is never drawn, usually the canvas height
	BarWidth int // Bar width in pixels; <= 0 draws nothing

	// Mask selects the accent ink per pixel. Defaults to Bayer8.
	Mask DitherMask
}

// BarRenderer draws vertical bars whose ink shifts from base to accent as
// they rise through the gradient range, approximating intermediate shades
// with ordered dithering.
type BarRenderer struct {
	c    Canvas
	mask DitherMask

	gradientTop    int
	gradientBottom int
	baseY          int
	yLimit         int
	barWidth       int
}

// NewBarRenderer returns a renderer drawing on c.
func NewBarRenderer(c Canvas, opts *BarOpts) *BarRenderer {
	mask := opts.Mask
	if mask == nil {
		mask = Bayer8
	}
	return &BarRenderer{
		c:              c,
		mask:           mask,
		gradientTop:    gradientRow(opts.GradientTop),
		gradientBottom: gradientRow(opts.GradientBottom),
		baseY:          opts.BaseY,
		yLimit:         opts.YLimit,
		barWidth:       opts.BarWidth,
	}
}

func gradientRow(v float64) int {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return unset
	}
	return int(math.Round(v))
}

// DrawBar draws one bar of width BarWidth starting at column x0.
//
// A positive h grows the bar upwards from the row above BaseY, a negative h
// grows it downwards from the row below BaseY without reaching YLimit, and a
// zero h draws a one-row hairline on BaseY.
//
// If accent is set every painted pixel uses the accent ink. If past is set
// only every other pixel, in a checkerboard, is painted.
func (r *BarRenderer) DrawBar(x0, h int, accent, past bool) {
	var y0 int
	switch {
	case h == 0:
		y0 = r.baseY
		h = 1
	case h < 0:
		h = min(-h, r.yLimit-(r.baseY+1))
		y0 = r.baseY + h
	default:
		y0 = r.baseY - 1
	}

	for y := y0; y >= 0 && y > y0-h; y-- {
		if y >= r.yLimit {
			continue
		}
		redness := r.redness(y)
		for x := x0; x < x0+r.barWidth; x++ {
			if past && (x^y)&1 == 0 {
				continue
			}
			ink := Base
			if accent || r.mask.Accent(x, y, redness) {
				ink = Accent
			}
			r.c.SetInk(x, y, ink)
		}
	}
}

// redness returns the accent intensity for row y: 255 at or above the
// gradient top, 0 at or below the gradient bottom, and a linear blend in
// between.
func (r *BarRenderer) redness(y int) uint8 {
	top, bottom := r.gradientTop, r.gradientBottom
	switch {
	case top == unset:
		// No gradient start: the accent is never reached.
		return 0
	case bottom == unset:
		// The gradient never fades out.
		return 0xff
	case y >= bottom:
		return 0
	case y <= top:
		return 0xff
	default:
		return uint8(0xff - ((y-top)*0xff)/(bottom-top))
	}
}

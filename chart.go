package pricechart

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/pekman/pricechart/imagebwr"
	"github.com/pekman/pricechart/series"
)

// ChartOpts is the configuration for a Chart. A non-positive BarWidth, Slots
// or GridHeight and nil interface fields take the defaults noted next to them.
// Zero margins are kept; only negative ones are replaced.
type ChartOpts struct {
	BarWidth            int // Horizontal pixels per hour (default: 5)
	Slots               int // Hours the x axis spans (default: 48)
	GridHeight          int // Pixels between the zero and top gridlines (default: 100)
	MarginTop           int // Space above the top gridline for its label (default: 6)
	HourIndicatorHeight int // Height of the current hour triangles (default: 4)

	// Prices at which bars reach full accent (GradientHigh) and at which
	// the accent has faded out (GradientLow). NaN leaves a bound unset; an
	// unset GradientHigh keeps future bars in the base ink.
	GradientHigh float64
	GradientLow  float64

	Face       font.Face   // Label font (default: basicfont.Face7x13)
	Base       color.Color // default: imagebwr.Black
	Accent     color.Color // default: imagebwr.Red
	Background color.Color // default: imagebwr.White

	NoData image.Image // Shown centred when there is nothing to plot
	Mask   DitherMask  // default: Bayer8
	Logger *slog.Logger
}

// DefaultChartOpts returns options with every default filled in and no
// gradient configured.
func DefaultChartOpts() ChartOpts {
	return ChartOpts{
		BarWidth:            5,
		Slots:               48,
		GridHeight:          100,
		MarginTop:           6,
		HourIndicatorHeight: 4,
		GradientHigh:        math.NaN(),
		GradientLow:         math.NaN(),
		Face:                basicfont.Face7x13,
		Base:                imagebwr.Black,
		Accent:              imagebwr.Red,
		Background:          imagebwr.White,
		Mask:                Bayer8,
	}
}

// Frame is the data for one render.
type Frame struct {
	// Prices holds one value per hour starting at midnight today. NaN marks
	// a missing hour. Values past the chart's slots are ignored.
	Prices []float64
	// Hour is the index of the current hour in Prices.
	Hour int
}

// Chart lays out an hourly price bar chart with axis grids and labels.
type Chart struct {
	opts ChartOpts
	log  *slog.Logger
}

// NewChart returns a Chart. opts may be nil to use DefaultChartOpts.
func NewChart(opts *ChartOpts) *Chart {
	o := DefaultChartOpts()
	if opts != nil {
		o = *opts
		d := DefaultChartOpts()
		if o.BarWidth <= 0 {
			o.BarWidth = d.BarWidth
		}
		if o.Slots <= 0 {
			o.Slots = d.Slots
		}
		if o.GridHeight <= 0 {
			o.GridHeight = d.GridHeight
		}
		if o.MarginTop < 0 {
			o.MarginTop = d.MarginTop
		}
		if o.HourIndicatorHeight < 0 {
			o.HourIndicatorHeight = d.HourIndicatorHeight
		}
		if o.Face == nil {
			o.Face = d.Face
		}
		if o.Base == nil {
			o.Base = d.Base
		}
		if o.Accent == nil {
			o.Accent = d.Accent
		}
		if o.Background == nil {
			o.Background = d.Background
		}
		if o.Mask == nil {
			o.Mask = d.Mask
		}
	}
	log := o.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Chart{opts: o, log: log}
}

// graphHeight is the row of the zero gridline.
func (c *Chart) graphHeight() int {
	return c.opts.GridHeight + c.opts.MarginTop
}

func (c *Chart) graphWidth() int {
	return c.opts.Slots * c.opts.BarWidth
}

// Draw renders f onto dst, replacing its previous contents. dst is expected
// to have its origin at (0, 0). A frame without a single finite price is drawn
// as DrawNoData.
func (c *Chart) Draw(dst draw.Image, f Frame) {
	c.clear(dst)

	maxPrice, ok := series.Max(f.Prices)
	if !ok {
		c.log.Warn("no data to plot", "hours", len(f.Prices))
		c.drawNoData(dst)
		return
	}

	cv := c.canvas(dst)
	size := dst.Bounds().Size()
	graphHeight := c.graphHeight()
	barWidth := c.opts.BarWidth
	marginLeft := (size.X - c.graphWidth()) / 2

	// Plan ticks for a scaled maximum so the top margin is used as well.
	ticks := PlanTicks(saturate(math.Ceil(maxPrice*float64(c.opts.GridHeight)/float64(graphHeight)), math.MaxInt))
	top := ticks[0]
	c.log.Debug("planned y axis", "max", maxPrice, "ticks", ticks)

	bars := NewBarRenderer(cv, &BarOpts{
		GradientTop:    c.priceRow(c.opts.GradientHigh, top),
		GradientBottom: c.priceRow(c.opts.GradientLow, top),
		BaseY:          graphHeight,
		YLimit:         size.Y,
		BarWidth:       barWidth - 1,
		Mask:           c.opts.Mask,
	})

	// Any bar taller than this already covers the whole canvas.
	maxHeight := graphHeight + size.Y

	for hour, price := range f.Prices {
		if hour >= c.opts.Slots {
			break
		}
		leftX := marginLeft + hour*barWidth

		heightF := math.Round(float64(c.opts.GridHeight) * price / float64(top))
		height := 0
		if math.IsNaN(heightF) || math.IsInf(heightF, 0) {
			c.log.Debug("no bar", "hour", hour)
		} else {
			height = saturate(heightF, maxHeight)
			c.log.Debug("bar", "hour", hour, "height", height)
			bars.DrawBar(leftX+1, height, hour == f.Hour, hour < f.Hour)
		}

		if hour == f.Hour {
			c.drawHourIndicator(cv, leftX+barWidth/2, graphHeight-height > c.opts.HourIndicatorHeight)
		}
	}

	c.drawXGrid(dst, cv, marginLeft)
	c.drawYGrid(dst, cv, marginLeft, ticks)
}

// DrawNoData clears dst and shows the no-data icon, or a text notice when no
// icon is configured.
func (c *Chart) DrawNoData(dst draw.Image) {
	c.clear(dst)
	c.drawNoData(dst)
}

func (c *Chart) drawNoData(dst draw.Image) {
	b := dst.Bounds()
	center := image.Pt((b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2)

	if icon := c.opts.NoData; icon != nil {
		ib := icon.Bounds()
		r := ib.Sub(ib.Min).Add(center.Sub(image.Pt(ib.Dx()/2, ib.Dy()/2)))
		draw.Draw(dst, r, icon, ib.Min, draw.Over)
		return
	}
	c.drawText(dst, center.X, center.Y, "No data", alignCenter)
}

func (c *Chart) clear(dst draw.Image) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c.opts.Background), image.Point{}, draw.Src)
}

func (c *Chart) canvas(dst draw.Image) *ImageCanvas {
	return &ImageCanvas{Dst: dst, Base: c.opts.Base, Accent: c.opts.Accent}
}

// priceRow maps a price to the row it would reach. NaN maps to NaN.
func (c *Chart) priceRow(price float64, top int) float64 {
	return float64(c.graphHeight()) - float64(c.opts.GridHeight)*price/float64(top)
}

// drawHourIndicator marks the current hour with a dotted line down the middle
// of its slot, a triangle at the bottom edge and, when there is room above
// the bar, another at the top edge.
func (c *Chart) drawHourIndicator(cv Canvas, centerX int, topRoom bool) {
	screenHeight := cv.Bounds().Dy()
	h := c.opts.HourIndicatorHeight

	for y := 1; y < screenHeight; y += 2 {
		cv.SetInk(centerX, y, Accent)
	}
	for y, x, w := screenHeight-h, centerX, 1; y < screenHeight; y, x, w = y+1, x-1, w+2 {
		hline(cv, x, y, w, Accent)
	}
	if topRoom {
		for y, x, w := h-1, centerX, 1; y >= 0; y, x, w = y-1, x-1, w+2 {
			hline(cv, x, y, w, Accent)
		}
	}
}

// drawXGrid draws a dotted gridline and a label every six hours.
func (c *Chart) drawXGrid(dst draw.Image, cv Canvas, marginLeft int) {
	graphHeight := c.graphHeight()
	for hour := 0; hour <= c.opts.Slots; hour += 6 {
		x := marginLeft + hour*c.opts.BarWidth
		for y := 0; y < graphHeight; y += 3 {
			cv.SetInk(x, y, Base)
		}
		vline(cv, x, graphHeight, 3, Base)
		c.drawText(dst, x, graphHeight+4, fmt.Sprintf("%02d", hour%24), alignTopCenter)
	}
}

// drawYGrid draws a dotted gridline per tick with solid ticks and labels on
// both sides, and an unlabelled zero gridline.
func (c *Chart) drawYGrid(dst draw.Image, cv Canvas, marginLeft int, ticks []int) {
	graphHeight := c.graphHeight()
	graphWidth := c.graphWidth()
	top := ticks[0]

	for _, tick := range ticks {
		y := graphHeight - (c.opts.GridHeight*tick)/top
		label := strconv.Itoa(tick)

		for x := marginLeft; x < marginLeft+graphWidth; x += 3 {
			cv.SetInk(x, y, Base)
		}
		hline(cv, marginLeft-4, y, 4, Base)
		c.drawText(dst, marginLeft-4-1, y, label, alignCenterRight)
		hline(cv, marginLeft+graphWidth, y, 4, Base)
		c.drawText(dst, marginLeft+graphWidth+4+1, y, label, alignCenterLeft)
	}

	// No label on the zero line; it would overlap the x axis labels.
	for x := marginLeft - 4; x < marginLeft+graphWidth+4; x += 3 {
		cv.SetInk(x, graphHeight, Base)
	}
}

type textAlign int

const (
	alignCenter textAlign = iota
	alignTopCenter
	alignCenterLeft
	alignCenterRight
)

// drawText draws s in the base color with its anchor point at (x, y).
func (c *Chart) drawText(dst draw.Image, x, y int, s string, align textAlign) {
	face := c.opts.Face
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	width := font.MeasureString(face, s).Ceil()

	var dotX, dotY int
	switch align {
	case alignTopCenter:
		dotX, dotY = x-width/2, y+ascent
	case alignCenterLeft:
		dotX, dotY = x, y-height/2+ascent
	case alignCenterRight:
		dotX, dotY = x-width, y-height/2+ascent
	default:
		dotX, dotY = x-width/2, y-height/2+ascent
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.opts.Base),
		Face: face,
		Dot:  fixed.P(dotX, dotY),
	}
	d.DrawString(s)
}

// saturate converts f to an int clamped to [-limit, limit].
func saturate(f float64, limit int) int {
	switch {
	case f >= float64(limit):
		return limit
	case f <= -float64(limit):
		return -limit
	}
	return int(f)
}

func hline(cv Canvas, x, y, w int, ink Ink) {
	for i := x; i < x+w; i++ {
		cv.SetInk(i, y, ink)
	}
}

func vline(cv Canvas, x, y, h int, ink Ink) {
	for i := y; i < y+h; i++ {
		cv.SetInk(x, i, ink)
	}
}

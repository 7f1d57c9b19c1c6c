package epd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/pekman/pricechart/imagebwr"
)

// Controller commands.
const (
	cmdDeepSleep    = 0x07
	cmdBlackPlane   = 0x10 // Data start transmission 1
	cmdRefresh      = 0x12 // Display refresh
	cmdRedPlane     = 0x13 // Data start transmission 2
	deepSleepMagic  = 0xA5
	busyPollPeriod  = 10 * time.Millisecond
	defaultBusyWait = 30 * time.Second
)

// ErrHalted is returned by every operation on a halted device.
var ErrHalted = errors.New("epd: halted")

// ErrBusyTimeout is returned when the panel does not finish a refresh in time.
var ErrBusyTimeout = errors.New("epd: timed out waiting for BUSY")

// Opts is the configuration for the panel.
type Opts struct {
	// Panel dimensions in pixels
	W int // Width (default: 250)
	H int // Height (default: 122)

	// Some controllers expect a cleared bit for ink in one or both planes.
	InvertBlack bool
	InvertRed   bool

	// BusyLevel is the level of the BUSY line while the panel is refreshing
	// (default: gpio.Low, as on UC8151).
	BusyLevel gpio.Level
	// BusyTimeout bounds the wait for a refresh (default: 30s).
	BusyTimeout time.Duration
}

// Dev is the device handle for a black/white/red e-paper panel.
type Dev struct {
	// Communication
	c    conn.Conn   // SPI connection
	dc   gpio.PinOut // Data/Command pin
	busy gpio.PinIn  // BUSY pin

	// Panel geometry and wire format
	rect        image.Rectangle
	invertBlack bool
	invertRed   bool
	busyLevel   gpio.Level
	busyTimeout time.Duration

	// Frame buffers
	next *imagebwr.Planar // Lazily allocated back buffer for Draw
	last *imagebwr.Planar // Last transmitted frame, nil before the first

	// State
	halted bool
}

// NewSPI creates a new device connected via SPI.
//
// The SPI port is configured for 4MHz, Mode0 (CPOL=0, CPHA=0), 8-bit transfers.
// The dc pin must be an output and busy an input.
//
// opts can be nil to use defaults (250x122 panel).
func NewSPI(p spi.Port, dc gpio.PinOut, busy gpio.PinIn, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 250, H: 122}
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if dc == nil || busy == nil {
		return nil, errors.New("epd: dc and busy pins are required")
	}

	c, err := p.Connect(4*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("epd: connect: %w", err)
	}
	if err := busy.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("epd: configure BUSY: %w", err)
	}

	return newDev(c, dc, busy, opts), nil
}

func newDev(c conn.Conn, dc gpio.PinOut, busy gpio.PinIn, opts *Opts) *Dev {
	timeout := opts.BusyTimeout
	if timeout <= 0 {
		timeout = defaultBusyWait
	}
	return &Dev{
		c:           c,
		dc:          dc,
		busy:        busy,
		rect:        image.Rect(0, 0, opts.W, opts.H),
		invertBlack: opts.InvertBlack,
		invertRed:   opts.InvertRed,
		busyLevel:   opts.BusyLevel,
		busyTimeout: timeout,
	}
}

func (o *Opts) validate() error {
	if o.W <= 0 || o.W > 800 {
		return errors.New("epd: width must be between 1 and 800")
	}
	if o.H <= 0 || o.H > 600 {
		return errors.New("epd: height must be between 1 and 600")
	}
	return nil
}

// sendCommand sends a command byte followed by its data bytes.
func (d *Dev) sendCommand(cmd byte, data ...byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.c.Tx([]byte{cmd}, nil); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return d.sendData(data)
}

// sendData sends a slice of data bytes.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// sendPlane sends one bit plane, inverting it if the controller wants cleared
// bits for ink.
func (d *Dev) sendPlane(cmd byte, plane []byte, invert bool) error {
	if invert {
		inv := make([]byte, len(plane))
		for i, b := range plane {
			inv[i] = ^b
		}
		plane = inv
	}
	if err := d.sendCommand(cmd); err != nil {
		return err
	}
	return d.sendData(plane)
}

// waitIdle polls BUSY until the panel leaves the busy state, ctx is done or
// the busy timeout elapses.
func (d *Dev) waitIdle(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, d.busyTimeout)
	defer cancel()

	ticker := time.NewTicker(busyPollPeriod)
	defer ticker.Stop()
	for d.busy.Read() == d.busyLevel {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return ErrBusyTimeout
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// ColorModel returns the color model of the panel.
func (d *Dev) ColorModel() color.Model {
	return imagebwr.Model
}

// Bounds returns the image bounds of the panel.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Update sends img to the panel, refreshes it and waits until the refresh has
// finished. img must cover exactly the panel bounds.
func (d *Dev) Update(ctx context.Context, img *imagebwr.Planar) error {
	if d.halted {
		return ErrHalted
	}
	if img.Rect != d.rect {
		return fmt.Errorf("epd: image bounds %v do not match panel %v", img.Rect, d.rect)
	}

	if err := d.sendPlane(cmdBlackPlane, img.Black, d.invertBlack); err != nil {
		return err
	}
	if err := d.sendPlane(cmdRedPlane, img.Red, d.invertRed); err != nil {
		return err
	}
	if err := d.sendCommand(cmdRefresh); err != nil {
		return err
	}
	if err := d.waitIdle(ctx); err != nil {
		return err
	}

	d.remember(img)
	return nil
}

// remember keeps a copy of the frame last shown on the panel.
func (d *Dev) remember(img *imagebwr.Planar) {
	if d.last == nil {
		d.last = imagebwr.NewPlanar(d.rect)
	}
	copy(d.last.Black, img.Black)
	copy(d.last.Red, img.Red)
}

// unchanged reports whether img matches the frame last shown on the panel.
func (d *Dev) unchanged(img *imagebwr.Planar) bool {
	return d.last != nil &&
		bytes.Equal(d.last.Black, img.Black) &&
		bytes.Equal(d.last.Red, img.Red)
}

// Draw draws an image onto the panel.
// The dst rectangle specifies the destination region on the panel.
// The src image is positioned at src point sp within the destination.
// Pixels outside dst keep the content of the previous frame. Nothing is sent
// if the resulting frame equals the one on the panel.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}

	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: a full-size Planar is sent as is
	if srcImg, ok := src.(*imagebwr.Planar); ok {
		if dst == d.rect && sp == (image.Point{}) && srcImg.Rect == d.rect {
			if d.unchanged(srcImg) {
				return nil
			}
			return d.Update(context.Background(), srcImg)
		}
	}

	// Slow path: compose into the back buffer, starting from what the panel
	// shows now
	if d.next == nil {
		d.next = imagebwr.NewPlanar(d.rect)
	}
	if d.last != nil {
		copy(d.next.Black, d.last.Black)
		copy(d.next.Red, d.last.Red)
	}
	draw.Draw(d.next, dst, src, sp, draw.Src)

	if d.unchanged(d.next) {
		return nil
	}
	return d.Update(context.Background(), d.next)
}

// Halt puts the panel into deep sleep.
// After calling Halt, the panel will not respond to further commands until it
// is reset and re-initialized.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	d.halted = true
	return d.sendCommand(cmdDeepSleep, deepSleepMagic)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("epd.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

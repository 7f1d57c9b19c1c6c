// Package epd transfers frames to a black/white/red e-paper controller via SPI.
//
// Controllers of the UC8151/IL0373 family accept a frame as two bit planes,
// one per ink, followed by a refresh command. While refreshing they hold the
// BUSY line at its active level. This package sends the planes of an
// imagebwr.Planar image and waits for the refresh to finish.
//
// The controller is expected to be powered and configured already (panel
// settings, waveform tables and booster timing are left to the firmware that
// brought the panel up). Dev only moves pixels.
//
// # Hardware Connection
//
//	Panel Pin → System Pin
//	GND       → GND
//	VCC       → 3.3V
//	CLK       → SPI Clock (SCLK)
//	DIN       → SPI Data (MOSI)
//	CS        → SPI Chip Select
//	DC        → GPIO (any available pin)
//	BUSY      → GPIO input
//
// # Basic Usage
//
//	if _, err := host.Init(); err != nil {
//		log.Fatal(err)
//	}
//	p, err := spireg.Open("")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	dev, err := epd.NewSPI(p, gpioreg.ByName("GPIO25"), gpioreg.ByName("GPIO24"), &epd.Opts{W: 250, H: 122})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer dev.Halt()
//
//	img := imagebwr.NewPlanar(dev.Bounds())
//	img.SetColor(10, 10, imagebwr.Red)
//	if err := dev.Update(context.Background(), img); err != nil {
//		log.Fatal(err)
//	}
//
// # Differential Updates
//
// Draw keeps the last transmitted frame and skips the transfer, and the slow
// full refresh, when the new frame is identical.
package epd

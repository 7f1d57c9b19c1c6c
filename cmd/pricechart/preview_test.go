package main

import (
	"image"
	"strings"
	"testing"

	"periph.io/x/conn/v3/gpio"

	"github.com/pekman/pricechart/config"
	"github.com/pekman/pricechart/epd"
	"github.com/pekman/pricechart/imagebwr"
)

func TestPreviewString(t *testing.T) {
	tests := []struct {
		name      string
		w, h      int
		wantLines int
	}{
		{"even height", 4, 6, 3},
		{"odd height", 3, 5, 3},
		{"single row", 7, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := imagebwr.NewPlanar(image.Rect(0, 0, tt.w, tt.h))
			img.SetColor(0, 0, imagebwr.Red)
			img.SetColor(tt.w-1, tt.h-1, imagebwr.Black)

			out := previewString(img)
			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			if len(lines) != tt.wantLines {
				t.Fatalf("got %d lines, want %d", len(lines), tt.wantLines)
			}
			for i, line := range lines {
				if got := strings.Count(line, "▀"); got != tt.w {
					t.Errorf("line %d has %d cells, want %d", i, got, tt.w)
				}
			}
		})
	}
}

func TestDisplayOpts(t *testing.T) {
	cfg := config.Default().Display
	opts := displayOpts(&cfg)
	want := epd.Opts{W: 250, H: 122, BusyLevel: gpio.Low, BusyTimeout: cfg.BusyTimeout()}
	if *opts != want {
		t.Errorf("displayOpts() = %+v, want %+v", *opts, want)
	}

	cfg.BusyActiveHigh = true
	cfg.InvertRed = true
	opts = displayOpts(&cfg)
	if opts.BusyLevel != gpio.High || !opts.InvertRed {
		t.Errorf("displayOpts() = %+v, want active-high BUSY and inverted red", *opts)
	}
}

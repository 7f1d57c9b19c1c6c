package main

import (
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pekman/pricechart/config"
	"github.com/pekman/pricechart/imagebwr"
)

var discard = slog.New(slog.DiscardHandler)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testConfig(t *testing.T, prices string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Display.Timezone = "UTC"
	cfg.Prices.File = writeFile(t, "prices.json", prices)
	return cfg
}

func countColor(img *imagebwr.Planar, c imagebwr.Color) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.ColorAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

const dayPrices = `{"start": "2026-10-16T00:00:00Z", "prices": [
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
	12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, null]}`

func TestRenderFrame(t *testing.T) {
	cfg := testConfig(t, dayPrices)
	now := time.Date(2026, 10, 16, 5, 30, 0, 0, time.UTC)

	img, err := renderFrame(cfg, discard, now)
	if err != nil {
		t.Fatalf("renderFrame() error = %v", err)
	}
	if got, want := img.Bounds(), image.Rect(0, 0, 250, 122); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if countColor(img, imagebwr.Red) == 0 {
		t.Error("no red pixels, want the current hour in red")
	}
	if countColor(img, imagebwr.Black) == 0 {
		t.Error("no black pixels, want grid and bars")
	}
}

func TestRenderFrameNoData(t *testing.T) {
	cfg := testConfig(t, dayPrices)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	img, err := renderFrame(cfg, discard, now)
	if err != nil {
		t.Fatalf("renderFrame() error = %v", err)
	}
	if n := countColor(img, imagebwr.Red); n != 0 {
		t.Errorf("%d red pixels on the no-data screen, want 0", n)
	}
	if countColor(img, imagebwr.Black) == 0 {
		t.Error("no-data notice not drawn")
	}
}

func TestRenderFrameNoDataIcon(t *testing.T) {
	icon := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			icon.Set(x, y, color.RGBA{0xff, 0, 0, 0xff})
		}
	}
	path := filepath.Join(t.TempDir(), "icon.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, icon); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cfg := testConfig(t, dayPrices)
	cfg.Chart.NoDataIcon = path
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	img, err := renderFrame(cfg, discard, now)
	if err != nil {
		t.Fatalf("renderFrame() error = %v", err)
	}
	if got := countColor(img, imagebwr.Red); got != 100 {
		t.Errorf("%d red pixels, want 100 from the icon", got)
	}
}

func TestRenderFrameErrors(t *testing.T) {
	now := time.Date(2026, 10, 16, 5, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		modify func(*config.Config)
		want   string
	}{
		{
			name:   "no price file",
			modify: func(c *config.Config) { c.Prices.File = "" },
			want:   "no price file",
		},
		{
			name:   "missing price file",
			modify: func(c *config.Config) { c.Prices.File = filepath.Join(t.TempDir(), "gone.json") },
			want:   "no such file",
		},
		{
			name:   "unknown zone",
			modify: func(c *config.Config) { c.Display.Timezone = "Mars/Olympus_Mons" },
			want:   "unknown time zone",
		},
		{
			name:   "missing dither mask",
			modify: func(c *config.Config) { c.Chart.DitherMask = filepath.Join(t.TempDir(), "mask.png") },
			want:   "dither mask",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, dayPrices)
			tt.modify(cfg)
			_, err := renderFrame(cfg, discard, now)
			if err == nil {
				t.Fatal("renderFrame() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadSeriesSheet(t *testing.T) {
	// A sheet name only applies to spreadsheets.
	path := writeFile(t, "prices.json", dayPrices)
	h, err := loadSeries(config.PricesConfig{File: path, Sheet: "Prices"})
	if err != nil {
		t.Fatalf("loadSeries() error = %v", err)
	}
	if len(h.Prices) != 24 {
		t.Errorf("len(Prices) = %d, want 24", len(h.Prices))
	}
}

func TestNewLogger(t *testing.T) {
	var sb strings.Builder
	log := newLogger(&sb, config.LoggingConfig{Level: "warn", Format: "json"})
	log.Info("hidden")
	log.Warn("shown", "k", 1)

	out := sb.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record logged at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("output = %q, want a JSON warn record", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

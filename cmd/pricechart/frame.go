package main

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Registered for the no-data icon and dither masks.
	_ "image/png"

	"github.com/pekman/pricechart"
	"github.com/pekman/pricechart/config"
	"github.com/pekman/pricechart/imagebwr"
	"github.com/pekman/pricechart/series"
)

// loadSeries reads the configured price series.
func loadSeries(cfg config.PricesConfig) (series.Hourly, error) {
	if cfg.File == "" {
		return series.Hourly{}, errors.New("no price file configured (set prices.file or --prices)")
	}
	if cfg.Sheet != "" && strings.EqualFold(filepath.Ext(cfg.File), ".xlsx") {
		return series.LoadXLSX(cfg.File, cfg.Sheet)
	}
	return series.Load(cfg.File)
}

// chartOpts builds renderer options, loading any images the config points at.
func chartOpts(cfg config.ChartConfig, log *slog.Logger) (pricechart.ChartOpts, error) {
	opts := cfg.ChartOpts()
	opts.Logger = log

	if cfg.DitherMask != "" {
		f, err := os.Open(cfg.DitherMask)
		if err != nil {
			return opts, fmt.Errorf("failed to open dither mask: %w", err)
		}
		defer f.Close()
		if opts.Mask, err = pricechart.DecodeDitherMask(f); err != nil {
			return opts, err
		}
	}

	if cfg.NoDataIcon != "" {
		f, err := os.Open(cfg.NoDataIcon)
		if err != nil {
			return opts, fmt.Errorf("failed to open no-data icon: %w", err)
		}
		defer f.Close()
		if opts.NoData, _, err = image.Decode(f); err != nil {
			return opts, fmt.Errorf("failed to decode no-data icon: %w", err)
		}
	}

	return opts, nil
}

// renderFrame draws the chart for now into a new framebuffer sized for the
// configured display.
func renderFrame(cfg *config.Config, log *slog.Logger, now time.Time) (*imagebwr.Planar, error) {
	loc, err := cfg.Display.Location()
	if err != nil {
		return nil, err
	}
	now = now.In(loc)

	h, err := loadSeries(cfg.Prices)
	if err != nil {
		return nil, err
	}
	opts, err := chartOpts(cfg.Chart, log)
	if err != nil {
		return nil, err
	}

	chart := pricechart.NewChart(&opts)
	img := imagebwr.NewPlanar(image.Rect(0, 0, cfg.Display.Width, cfg.Display.Height))

	prices, ok := h.Today(now)
	if !ok {
		log.Warn("no data available for today", "start", h.Start.Format(time.RFC3339), "now", now.Format(time.RFC3339))
		chart.DrawNoData(img)
		return img, nil
	}

	log.Info("rendering chart", "hours", len(prices), "hour", now.Hour())
	chart.Draw(img, pricechart.Frame{Prices: prices, Hour: now.Hour()})
	return img, nil
}

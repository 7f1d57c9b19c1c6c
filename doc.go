// Package pricechart renders hourly electricity prices as a bar chart on a
// black/white/red e-paper panel.
//
// A bichromatic panel has only two inks besides the paper. Bars are drawn
// with ordered dithering so that a price gradient can still be shown: bars
// turn from black to red as they rise through a configurable price range.
//
// # Building Blocks
//
// - PlanTicks picks round gridline values for the price axis
// - DitherMask decides per pixel whether an intensity lights the accent ink
// - BarRenderer draws one gradient bar onto a Canvas
// - Chart lays out a full day (or two) of bars, grids and labels
//
// The renderers only need a Canvas, a pixel sink taking one of two Inks.
// ImageCanvas adapts any draw.Image, such as an imagebwr.Planar framebuffer
// that can be sent to a panel with package epd.
//
// # Basic Usage
//
//	prices, ok := hourly.Today(time.Now())
//	img := imagebwr.NewPlanar(image.Rect(0, 0, 250, 122))
//	opts := pricechart.DefaultChartOpts()
//	opts.GradientHigh = 20 // fully red from 20 c/kWh
//	opts.GradientLow = 5   // fully black up to 5 c/kWh
//	chart := pricechart.NewChart(&opts)
//	if ok {
//		chart.Draw(img, pricechart.Frame{Prices: prices, Hour: time.Now().Hour()})
//	} else {
//		chart.DrawNoData(img)
//	}
//
// # Drawing Single Bars
//
// BarRenderer can be used on its own with any Canvas:
//
//	r := pricechart.NewBarRenderer(canvas, &pricechart.BarOpts{
//		GradientTop:    20,
//		GradientBottom: 80,
//		BaseY:          106,
//		YLimit:         122,
//		BarWidth:       4,
//	})
//	r.DrawBar(10, 60, false, false) // 60 pixels tall, dithered
//	r.DrawBar(15, 0, false, false)  // hairline on the base row
//	r.DrawBar(20, -8, false, true)  // below the base row, checkerboard
//
// Rendering is synchronous and allocation-light. None of the types are safe
// for concurrent use on the same Canvas.
package pricechart

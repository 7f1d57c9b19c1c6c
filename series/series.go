// Package series holds hourly price series and selects the part of a series
// that is relevant for the current day.
package series

import (
	"math"
	"time"
)

// HoursPerDay is the number of slots one calendar day occupies in a series.
const HoursPerDay = 24

// Hourly is a price series with one value per hour starting at Start.
// NaN marks a missing hour.
type Hourly struct {
	Start  time.Time
	Prices []float64
}

// Today returns the prices from midnight of now's day onwards.
//
// A series typically covers today and tomorrow. If now falls on the day
// after Start, the first day is skipped. If now is on neither day, ok is
// false: the series holds nothing usable for today. Dates are compared in
// now's location.
func (h Hourly) Today(now time.Time) (prices []float64, ok bool) {
	start := h.Start.In(now.Location())
	switch {
	case sameDay(start, now):
		return h.Prices, true
	case sameDay(start.AddDate(0, 0, 1), now):
		if len(h.Prices) <= HoursPerDay {
			return []float64{}, true
		}
		return h.Prices[HoursPerDay:], true
	default:
		return nil, false
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Max returns the largest non-NaN value. ok is false when values holds no
// number at all.
func Max(values []float64) (top float64, ok bool) {
	top = math.Inf(-1)
	for _, v := range values {
		if v > top {
			top = v
		}
	}
	return top, !math.IsInf(top, -1)
}

package pricechart

import "math"

// PlanTicks returns round gridline values for a vertical axis whose data
// reaches maxValue. The result is non-empty and strictly descending. Its first
// element is the top gridline, which is never below maxValue.
//
// Fractional ticks are not supported, so any maxValue <= 1 yields []int{1}.
// Past the largest round value an int can hold (9·10^18 on 64-bit), the top
// saturates there and falls below maxValue.
func PlanTicks(maxValue int) []int {
	if maxValue <= 1 {
		return []int{1}
	}

	// Order of magnitude and leading digit, in integers so that exact powers
	// of ten are not misjudged by floating point log10.
	magnitude := 1
	for magnitude <= maxValue/10 {
		magnitude *= 10
	}
	firstDigit := (maxValue-1)/magnitude + 1
	if firstDigit > math.MaxInt/magnitude {
		firstDigit = math.MaxInt / magnitude
	}
	top := firstDigit * magnitude

	// top is divisible by every denominator used for its leading digit, so
	// dividing first is exact and cannot overflow.
	switch firstDigit {
	case 1, 5, 10: // 10 8 6 4 2, 5 4 3 2 1
		return []int{top, top / 5 * 4, top / 5 * 3, top / 5 * 2, top / 5}
	case 2: // 2 1
		return []int{top, top / 2}
	case 3, 6: // 3 2 1, 6 4 2
		return []int{top, top / 3 * 2, top / 3}
	case 4, 8: // 4 3 2 1, 8 6 4 2
		return []int{top, top / 4 * 3, top / 2, top / 4}
	// Uneven spacing; these have no pleasing subdivision.
	case 7: // 7 5
		return []int{top, top / 7 * 5}
	case 9: // 9 5
		return []int{top, top / 9 * 5}
	default:
		return []int{top}
	}
}

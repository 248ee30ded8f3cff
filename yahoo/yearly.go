package yahoo

import "github.com/etnz/montecarlo/date"

// YearEndCloses resamples a daily close history into one close per calendar
// year: the last observed close of each year. Years with no observation at
// all are forward-filled with the previous year's close, so irregular
// trading-day coverage cannot punch holes in the series.
//
// It returns the covered years and their closes, in chronological order.
func YearEndCloses(h *date.History[float64]) (years []int, closes []float64) {
	if h.Len() == 0 {
		return nil, nil
	}

	lastOfYear := make(map[int]float64)
	first, last := 0, 0
	for on, value := range h.Values() {
		y := on.Year()
		// Values() is chronological, so the last write for a year wins.
		lastOfYear[y] = value
		if first == 0 {
			first = y
		}
		last = y
	}

	years = make([]int, 0, last-first+1)
	closes = make([]float64, 0, last-first+1)
	previous := 0.0
	for y := first; y <= last; y++ {
		value, ok := lastOfYear[y]
		if !ok {
			value = previous // forward fill over gap years
		}
		years = append(years, y)
		closes = append(closes, value)
		previous = value
	}
	return years, closes
}

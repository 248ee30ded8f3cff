package montecarlo

import "fmt"

// AnnualReturns derives the pool of yearly fractional returns of one asset
// from its chronological series of year-end closes.
//
// For each adjacent pair of closes (prev, curr) it yields
// (curr - prev) / prev, e.g. 0.15 for +15%. The first close has no prior
// value and is dropped. Order is preserved, although later resampling does
// not depend on it.
//
// It fails with InsufficientDataError when fewer than 2 closes are available.
func AnnualReturns(ticker string, closes []float64) ([]float64, error) {
	if len(closes) < 2 {
		return nil, &InsufficientDataError{Ticker: ticker, Points: len(closes)}
	}
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		prev := closes[i-1]
		if prev == 0 {
			return nil, fmt.Errorf("invalid close for %q at year index %d: zero price", ticker, i-1)
		}
		returns = append(returns, (closes[i]-prev)/prev)
	}
	return returns, nil
}

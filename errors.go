package montecarlo

import "fmt"

// All simulation failures are configuration or data errors: they are detected
// eagerly, before any trial runs, and are never retried. The caller is
// expected to fix the inputs and rerun.

// InsufficientDataError reports an asset whose price history is too short to
// derive a single annual return.
type InsufficientDataError struct {
	Ticker string
	Points int // usable year-end closes found
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient history for %q: %d year-end close(s), need at least 2", e.Ticker, e.Points)
}

// EmptyReturnPoolError reports an asset in the portfolio that maps to zero
// usable annual returns.
type EmptyReturnPoolError struct {
	Ticker string
}

func (e *EmptyReturnPoolError) Error() string {
	return fmt.Sprintf("empty return pool for %q", e.Ticker)
}

// InvalidWeightsError reports a portfolio whose weights do not form a valid
// allocation. When a single holding is at fault Ticker names it, otherwise
// Sum carries the offending total.
type InvalidWeightsError struct {
	Ticker string
	Weight float64
	Sum    float64
}

func (e *InvalidWeightsError) Error() string {
	if e.Ticker != "" {
		return fmt.Sprintf("invalid weight %v for %q: want a value in (0,1]", e.Weight, e.Ticker)
	}
	return fmt.Sprintf("portfolio weights sum to %v: want 1.0", e.Sum)
}

// InvalidRangeError reports a growth probability query that supplies no bound.
type InvalidRangeError struct{}

func (e *InvalidRangeError) Error() string {
	return "growth probability query has no bound: want at least a min or a max"
}

// EmptyDistributionError reports statistics requested over zero trials.
type EmptyDistributionError struct {
	Op string // the operation that needed a non-empty distribution
}

func (e *EmptyDistributionError) Error() string {
	return fmt.Sprintf("cannot compute %s over an empty growth distribution", e.Op)
}

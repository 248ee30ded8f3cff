package montecarlo

import "fmt"

// Config holds the immutable parameters of one simulation run.
//
// It is always passed explicitly to the engine, never read from ambient
// state.
type Config struct {
	// Trials is the number of independent simulated lifetimes. Positive.
	Trials int
	// Years is the number of simulated years per trial. Zero is valid and
	// yields trajectories of a single point.
	Years int
	// InitialInvestment is the portfolio value at year 0. Positive.
	InitialInvestment float64
	// BenchmarkReturn is the annual fractional return of an optional
	// benchmark (e.g. 0.1188 for the S&P 500 historical average).
	// Nil disables benchmark comparison.
	BenchmarkReturn *float64
	// Seed is the base seed of the random source. Two runs with the same
	// seed and identical inputs produce identical trial matrices,
	// regardless of the number of workers.
	Seed int64
	// Workers bounds the number of goroutines simulating trials.
	// Zero or negative means one per available CPU.
	Workers int
}

// Validate checks the counts and the initial investment.
func (c Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("invalid trials count %d: want a positive integer", c.Trials)
	}
	if c.Years < 0 {
		return fmt.Errorf("invalid years count %d: want a non-negative integer", c.Years)
	}
	if c.InitialInvestment <= 0 {
		return fmt.Errorf("invalid initial investment %v: want a positive amount", c.InitialInvestment)
	}
	return nil
}

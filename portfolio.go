package montecarlo

import "math"

// weightTolerance is the accepted deviation of the weight sum from 1.0.
const weightTolerance = 1e-6

// Holding pairs a ticker with its target weight of the total portfolio value.
type Holding struct {
	Ticker string  `json:"ticker"`
	Weight float64 `json:"weight"`
}

// Portfolio is the target allocation of the simulated portfolio: an ordered
// list of holdings whose weights sum to 1. It is immutable for the duration
// of a run.
type Portfolio struct {
	holdings []Holding
}

// NewPortfolio builds a validated Portfolio from holdings.
// It fails with InvalidWeightsError when a weight is outside (0,1] or the
// weights do not sum to 1 within tolerance.
func NewPortfolio(holdings ...Holding) (*Portfolio, error) {
	p := &Portfolio{holdings: make([]Holding, len(holdings))}
	copy(p.holdings, holdings)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks every weight is in (0,1] and that they sum to 1.0 within
// tolerance. A violation is a configuration error, found before any trial.
func (p *Portfolio) Validate() error {
	sum := 0.0
	for _, h := range p.holdings {
		if h.Weight <= 0 || h.Weight > 1 {
			return &InvalidWeightsError{Ticker: h.Ticker, Weight: h.Weight}
		}
		sum += h.Weight
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return &InvalidWeightsError{Sum: sum}
	}
	return nil
}

// Holdings returns a copy of the portfolio's holdings in order.
func (p *Portfolio) Holdings() []Holding {
	holdings := make([]Holding, len(p.holdings))
	copy(holdings, p.holdings)
	return holdings
}

// Tickers returns the tickers of all holdings in order.
func (p *Portfolio) Tickers() []string {
	tickers := make([]string, len(p.holdings))
	for i, h := range p.holdings {
		tickers[i] = h.Ticker
	}
	return tickers
}

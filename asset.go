package montecarlo

import "math/rand"

// Asset owns the empirical pool of annual returns for one ticker.
// It is immutable once built: created once per simulation run from
// historical data, discarded after the run.
type Asset struct {
	ticker string
	pool   []float64
}

// NewAsset builds an Asset from a ticker and its annual return pool.
// The pool is copied, the caller keeps no handle on the Asset's state.
func NewAsset(ticker string, pool []float64) Asset {
	p := make([]float64, len(pool))
	copy(p, pool)
	return Asset{ticker: ticker, pool: p}
}

// Ticker returns the asset's identifier.
func (a Asset) Ticker() string { return a.ticker }

// Pool returns a copy of the asset's annual return pool.
func (a Asset) Pool() []float64 {
	p := make([]float64, len(a.pool))
	copy(p, a.pool)
	return p
}

// PoolSize returns the number of historical annual returns of the asset.
func (a Asset) PoolSize() int { return len(a.pool) }

// draw picks one return uniformly at random, with replacement, from the pool.
func (a Asset) draw(rng *rand.Rand) float64 {
	return a.pool[rng.Intn(len(a.pool))]
}

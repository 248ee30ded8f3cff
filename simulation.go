package montecarlo

import (
	"context"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Trajectory is the sequence of portfolio values of one trial, one value per
// year index 0..years. Index 0 equals the initial investment. Produced once,
// read-only afterwards.
type Trajectory []float64

// Final returns the portfolio value at the end of the trial.
func (t Trajectory) Final() float64 { return t[len(t)-1] }

// TrialMatrix collects one Trajectory per trial.
type TrialMatrix []Trajectory

// Run simulates cfg.Trials independent multi-year trajectories of the
// portfolio. Every simulated year, each asset's share of the portfolio is
// reset to its target weight of the total value (annual rebalancing), then
// one return is drawn uniformly with replacement from the asset's pool,
// independently per asset, per year and per trial.
//
// All inputs are validated before any trial starts: an invalid portfolio or
// config fails with the corresponding error, a holding with no usable
// returns fails with EmptyReturnPoolError. No partial matrix is ever
// returned.
//
// Trials have no shared mutable state, so they are spread over cfg.Workers
// goroutines; ctx cancellation stops the run between trials.
func Run(ctx context.Context, market *Market, p *Portfolio, cfg Config) (TrialMatrix, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	holdings := p.Holdings()
	assets := make([]Asset, len(holdings))
	weights := make([]float64, len(holdings))
	for i, h := range holdings {
		a, ok := market.Get(h.Ticker)
		if !ok || a.PoolSize() == 0 {
			return nil, &EmptyReturnPoolError{Ticker: h.Ticker}
		}
		assets[i] = a
		weights[i] = h.Weight
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > cfg.Trials {
		workers = cfg.Trials
	}

	// Each worker fills a disjoint slice of the matrix, so the only merge
	// point is g.Wait.
	matrix := make(TrialMatrix, cfg.Trials)
	chunk := (cfg.Trials + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, cfg.Trials)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for t := lo; t < hi; t++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				rng := rand.New(rand.NewSource(trialSeed(cfg.Seed, t)))
				matrix[t] = simulateTrial(rng, assets, weights, cfg)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return matrix, nil
}

// simulateTrial runs one complete simulated lifetime of the portfolio.
func simulateTrial(rng *rand.Rand, assets []Asset, weights []float64, cfg Config) Trajectory {
	trajectory := make(Trajectory, 0, cfg.Years+1)
	value := cfg.InitialInvestment
	trajectory = append(trajectory, value)
	for year := 1; year <= cfg.Years; year++ {
		delta := 0.0
		for i, a := range assets {
			// Rebalancing: the share is a fraction of the total value, not
			// of the asset's own prior growth.
			share := value * weights[i]
			delta += share * a.draw(rng)
		}
		value += delta
		trajectory = append(trajectory, value)
	}
	return trajectory
}

// trialSeed derives a per-trial source from the base seed, so results do not
// depend on how trials are spread across workers.
func trialSeed(base int64, trial int) int64 {
	const mix = 0x9E3779B97F4A7C15 // golden-ratio increment, keeps sub-seeds apart
	return int64(uint64(base) + uint64(trial)*mix)
}

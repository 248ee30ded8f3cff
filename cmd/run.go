package cmd

import (
	"context"
	"flag"
	"time"

	"github.com/etnz/montecarlo"
)

// runCmd holds the flags shared by every subcommand that runs a simulation.
type runCmd struct {
	trials  int
	years   int
	initial float64
	seed    int64
	workers int

	market    *montecarlo.Market
	portfolio *montecarlo.Portfolio
}

func (c *runCmd) setFlags(f *flag.FlagSet) {
	f.IntVar(&c.trials, "trials", 1000, "number of simulated trials")
	f.IntVar(&c.years, "years", 10, "investment horizon in years")
	f.Float64Var(&c.initial, "initial", 10_000, "initial investment amount")
	f.Int64Var(&c.seed, "seed", 0, "random seed, 0 picks one from the clock")
	f.IntVar(&c.workers, "workers", 0, "parallel workers, 0 uses all CPUs")
}

func (c *runCmd) config() montecarlo.Config {
	seed := c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return montecarlo.Config{
		Trials:            c.trials,
		Years:             c.years,
		InitialInvestment: c.initial,
		Seed:              seed,
		Workers:           c.workers,
	}
}

// run fetches market data and executes the simulation with the flag values.
func (c *runCmd) run(ctx context.Context, cfg montecarlo.Config) (montecarlo.TrialMatrix, error) {
	market, p, err := BuildMarket(ctx)
	if err != nil {
		return nil, err
	}
	c.market, c.portfolio = market, p
	return montecarlo.Run(ctx, market, p, cfg)
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/montecarlo/renderer"
	"github.com/google/subcommands"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	run       runCmd
	benchmark float64
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "run a Monte Carlo simulation of the portfolio" }
func (*simulateCmd) Usage() string {
	return `mcs simulate [-trials n] [-years n] [-initial amount] [-benchmark rate] [-seed n] [-workers n]

  Resamples each holding's historical annual returns to simulate many possible
  portfolio lifetimes, rebalancing to the target weights every year, and
  reports the distribution of final growth.

Usage Examples:
# 1000 lifetimes of 10 years for the default portfolio file.
$ mcs simulate

# Compare against a fixed 7% annual return.
$ mcs simulate -benchmark 0.07
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	c.run.setFlags(f)
	f.Float64Var(&c.benchmark, "benchmark", 0, "fixed annual return to compare against, as a fraction (0.07 for 7%)")
}

func (c *simulateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := c.run.config()
	if c.benchmark != 0 {
		cfg.BenchmarkReturn = &c.benchmark
	}

	matrix, err := c.run.run(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := renderer.NewReport(c.run.market, c.run.portfolio, cfg, matrix, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SimulationMarkdown(report))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/montecarlo"
	"github.com/google/subcommands"
)

// probabilityCmd holds the flags for the 'probability' subcommand.
type probabilityCmd struct {
	run      runCmd
	min, max string
}

func (*probabilityCmd) Name() string { return "probability" }
func (*probabilityCmd) Synopsis() string {
	return "estimate the probability of a final growth outcome"
}
func (*probabilityCmd) Usage() string {
	return `mcs probability [-min pct] [-max pct] [-trials n] [-years n]

  Estimates the share of simulated trials whose final growth falls strictly
  above -min, strictly below -max, or strictly between both. Bounds are
  percentages of the initial investment and are exclusive. At least one bound
  is required.

Usage Examples:
# Chance of more than doubling in 10 years.
$ mcs probability -min 100

# Chance of ending below the starting value.
$ mcs probability -max 0

# Chance of a final growth strictly between 0% and 50%.
$ mcs probability -min 0 -max 50
`
}

func (c *probabilityCmd) SetFlags(f *flag.FlagSet) {
	c.run.setFlags(f)
	f.StringVar(&c.min, "min", "", "exclusive lower bound on final growth, in percent")
	f.StringVar(&c.max, "max", "", "exclusive upper bound on final growth, in percent")
}

// query builds the tagged growth query from the -min/-max flags.
func (c *probabilityCmd) query() (montecarlo.Query, error) {
	var minv, maxv float64
	var err error
	if c.min != "" {
		if minv, err = strconv.ParseFloat(c.min, 64); err != nil {
			return montecarlo.Query{}, fmt.Errorf("invalid -min %q: %w", c.min, err)
		}
	}
	if c.max != "" {
		if maxv, err = strconv.ParseFloat(c.max, 64); err != nil {
			return montecarlo.Query{}, fmt.Errorf("invalid -max %q: %w", c.max, err)
		}
	}

	switch {
	case c.min != "" && c.max != "":
		return montecarlo.BetweenQuery(minv, maxv), nil
	case c.min != "":
		return montecarlo.AtLeastQuery(minv), nil
	case c.max != "":
		return montecarlo.AtMostQuery(maxv), nil
	}
	return montecarlo.Query{}, fmt.Errorf("at least one of -min and -max is required")
}

func (c *probabilityCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	query, err := c.query()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg := c.run.config()
	matrix, err := c.run.run(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	dist := montecarlo.FinalGrowths(matrix, cfg.InitialInvestment)
	prob, err := montecarlo.Probability(dist, query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(fmt.Sprintf("Over %d trials of %d years: **%s**\n", cfg.Trials, cfg.Years, prob))
	return subcommands.ExitSuccess
}

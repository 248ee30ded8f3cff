package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/montecarlo"
	"github.com/etnz/montecarlo/renderer"
	"github.com/google/subcommands"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	run        runCmd
	trajectory string
	histogram  string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render simulation charts to PNG files" }
func (*chartCmd) Usage() string {
	return `mcs chart [-trajectory file] [-histogram file] [-trials n] [-years n]

  Runs a simulation and renders PNG charts: the growth trajectories of the
  simulated portfolios, and the histogram of final growth values.

Usage Examples:
# Write both charts with default names.
$ mcs chart

# Only the histogram, to a chosen file.
$ mcs chart -trajectory "" -histogram growth.png
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.run.setFlags(f)
	f.StringVar(&c.trajectory, "trajectory", "trajectory.png", "output file for the trajectory chart, empty skips it")
	f.StringVar(&c.histogram, "histogram", "histogram.png", "output file for the final growth histogram, empty skips it")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.trajectory == "" && c.histogram == "" {
		fmt.Fprintln(os.Stderr, "Error: nothing to render, both chart files are empty")
		return subcommands.ExitUsageError
	}

	cfg := c.run.config()
	matrix, err := c.run.run(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.trajectory != "" {
		png, err := renderer.TrajectoryChart(matrix, cfg.InitialInvestment)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering trajectory chart: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.trajectory, png, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.trajectory, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote %s\n", c.trajectory)
	}

	if c.histogram != "" {
		dist := montecarlo.FinalGrowths(matrix, cfg.InitialInvestment)
		png, err := renderer.HistogramChart(dist)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering histogram chart: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.histogram, png, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.histogram, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote %s\n", c.histogram)
	}

	return subcommands.ExitSuccess
}

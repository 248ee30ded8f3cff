package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/montecarlo"
	"github.com/etnz/montecarlo/yahoo"
	"github.com/google/subcommands"
)

// returnsCmd holds the flags for the 'returns' subcommand.
type returnsCmd struct {
	ticker string
}

func (*returnsCmd) Name() string     { return "returns" }
func (*returnsCmd) Synopsis() string { return "show the historical annual returns of a ticker" }
func (*returnsCmd) Usage() string {
	return `mcs returns -t <ticker>

  Fetches the full daily history of a ticker, keeps the last close of each
  calendar year, and shows the annual returns the simulation would draw from.

Usage Examples:
$ mcs returns -t AAPL
`
}

func (c *returnsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "ticker to inspect (Yahoo Finance symbol)")
}

func (c *returnsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t is required")
		return subcommands.ExitUsageError
	}

	client := yahoo.NewClient()
	closes, err := client.DailyCloses(c.ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	years, yearly := yahoo.YearEndCloses(closes)
	pool, err := montecarlo.AnnualReturns(c.ticker, yearly)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.ticker)
	if meta, err := client.Meta(c.ticker); err == nil {
		last := montecarlo.M(meta.LastClose, meta.Currency)
		fmt.Fprintf(&b, "Last close: %s\n\n", last)
	}
	b.WriteString("| Year | Close | Return |\n")
	b.WriteString("|------|------:|-------:|\n")
	for i, year := range years {
		if i == 0 {
			// The first year has no previous close to compute a return from.
			fmt.Fprintf(&b, "| %d | %.2f | |\n", year, yearly[i])
			continue
		}
		fmt.Fprintf(&b, "| %d | %.2f | %s |\n", year, yearly[i], montecarlo.Percent(pool[i-1]*100).SignedString())
	}
	fmt.Fprintf(&b, "\n%d annual returns available for resampling.\n", len(pool))

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// Package cmd implements the CLI application to simulate portfolio growth.
package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/montecarlo"
	"github.com/etnz/montecarlo/yahoo"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&simulateCmd{}, "simulation")
	c.Register(&probabilityCmd{}, "simulation")
	c.Register(&benchmarkCmd{}, "simulation")
	c.Register(&chartCmd{}, "simulation")

	c.Register(&returnsCmd{}, "market data")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("f", "portfolio.jsonl", "Path to the portfolio file (JSONL format)")
var currency = flag.String("currency", "USD", "Currency for money amounts in reports")

// BuildMarket loads the app default portfolio file and fetches one pool of
// historical annual returns per holding.
func BuildMarket(ctx context.Context) (*montecarlo.Market, *montecarlo.Portfolio, error) {
	p, err := montecarlo.LoadPortfolio(*portfolioFile)
	if err != nil {
		return nil, nil, err
	}

	client := yahoo.NewClient()
	market := montecarlo.NewMarket()
	for _, ticker := range p.Tickers() {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		closes, err := client.DailyCloses(ticker)
		if err != nil {
			return nil, nil, fmt.Errorf("could not fetch history for %q: %w", ticker, err)
		}
		_, yearly := yahoo.YearEndCloses(closes)
		pool, err := montecarlo.AnnualReturns(ticker, yearly)
		if err != nil {
			return nil, nil, err
		}
		market.Add(montecarlo.NewAsset(ticker, pool))
	}
	return market, p, nil
}

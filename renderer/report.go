package renderer

import (
	"github.com/etnz/montecarlo"
	"github.com/etnz/montecarlo/date"
)

// AssetLine describes one portfolio holding as it enters the simulation.
type AssetLine struct {
	Ticker   string
	Weight   montecarlo.Percent
	PoolSize int
}

// BenchmarkLine carries the fixed-rate comparison of a simulation report.
type BenchmarkLine struct {
	AnnualReturn   montecarlo.Percent
	FutureValue    montecarlo.Money
	Outperformance montecarlo.Percent
}

// Report aggregates everything a simulation run produces for rendering.
type Report struct {
	Date              date.Date
	Trials            int
	Years             int
	InitialInvestment montecarlo.Money
	Assets            []AssetLine

	Summary montecarlo.Summary
	// Final portfolio values corresponding to the mean and median growth.
	MeanValue   montecarlo.Money
	MedianValue montecarlo.Money

	Benchmark *BenchmarkLine
}

// NewReport assembles a Report from a finished simulation.
//
// The currency is used for all money amounts in the report.
func NewReport(market *montecarlo.Market, p *montecarlo.Portfolio, cfg montecarlo.Config, matrix montecarlo.TrialMatrix, currency string) (*Report, error) {
	dist := montecarlo.FinalGrowths(matrix, cfg.InitialInvestment)
	summary, err := montecarlo.Summarize(dist)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Date:              date.Today(),
		Trials:            cfg.Trials,
		Years:             cfg.Years,
		InitialInvestment: montecarlo.M(cfg.InitialInvestment, currency),
		Summary:           summary,
		MeanValue:         montecarlo.M(cfg.InitialInvestment*(1+float64(summary.Mean)/100), currency),
		MedianValue:       montecarlo.M(cfg.InitialInvestment*(1+float64(summary.Median)/100), currency),
	}

	for _, h := range p.Holdings() {
		asset, ok := market.Get(h.Ticker)
		if !ok {
			continue
		}
		r.Assets = append(r.Assets, AssetLine{
			Ticker:   h.Ticker,
			Weight:   montecarlo.Percent(h.Weight * 100),
			PoolSize: asset.PoolSize(),
		})
	}

	if cfg.BenchmarkReturn != nil {
		rate := *cfg.BenchmarkReturn
		outperf, err := montecarlo.OutperformanceProbability(dist, cfg.InitialInvestment, rate, cfg.Years)
		if err != nil {
			return nil, err
		}
		r.Benchmark = &BenchmarkLine{
			AnnualReturn:   montecarlo.Percent(rate * 100),
			FutureValue:    montecarlo.M(montecarlo.BenchmarkFutureValue(cfg.InitialInvestment, rate, cfg.Years), currency),
			Outperformance: outperf,
		}
	}
	return r, nil
}

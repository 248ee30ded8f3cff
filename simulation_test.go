package montecarlo

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
)

func singleAssetRun(t *testing.T, pool []float64, cfg Config) TrialMatrix {
	t.Helper()
	market := NewMarket()
	market.Add(NewAsset("ONE", pool))
	p, err := NewPortfolio(Holding{Ticker: "ONE", Weight: 1.0})
	if err != nil {
		t.Fatal(err)
	}
	matrix, err := Run(context.Background(), market, p, cfg)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return matrix
}

func TestRun_Shape(t *testing.T) {
	cfg := Config{Trials: 50, Years: 7, InitialInvestment: 100, Seed: 1}
	matrix := singleAssetRun(t, []float64{0.1, -0.1}, cfg)

	if len(matrix) != cfg.Trials {
		t.Fatalf("len(matrix) = %d, want %d", len(matrix), cfg.Trials)
	}
	for i, trajectory := range matrix {
		if len(trajectory) != cfg.Years+1 {
			t.Fatalf("trial %d: trajectory length = %d, want %d", i, len(trajectory), cfg.Years+1)
		}
		if trajectory[0] != cfg.InitialInvestment {
			t.Errorf("trial %d: year 0 value = %v, want exactly %v", i, trajectory[0], cfg.InitialInvestment)
		}
	}
}

func TestRun_ZeroYears(t *testing.T) {
	cfg := Config{Trials: 20, Years: 0, InitialInvestment: 100, Seed: 1}
	matrix := singleAssetRun(t, []float64{0.5}, cfg)
	dist := FinalGrowths(matrix, cfg.InitialInvestment)
	for i, trajectory := range matrix {
		if len(trajectory) != 1 {
			t.Fatalf("trial %d: trajectory length = %d, want 1", i, len(trajectory))
		}
		if dist[i] != 0 {
			t.Errorf("trial %d: final growth = %v, want 0", i, dist[i])
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	cfg := Config{Trials: 100, Years: 5, InitialInvestment: 100, Seed: 42}
	a := singleAssetRun(t, []float64{0.1, -0.05, 0.3}, cfg)
	b := singleAssetRun(t, []float64{0.1, -0.05, 0.3}, cfg)
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs with the same seed and inputs must produce identical matrices")
	}
}

func TestRun_WorkerCountDoesNotChangeResults(t *testing.T) {
	base := Config{Trials: 64, Years: 4, InitialInvestment: 100, Seed: 7}
	serial, parallel := base, base
	serial.Workers = 1
	parallel.Workers = 8
	a := singleAssetRun(t, []float64{0.2, -0.1, 0.05}, serial)
	b := singleAssetRun(t, []float64{0.2, -0.1, 0.05}, parallel)
	if !reflect.DeepEqual(a, b) {
		t.Error("trial results must not depend on the number of workers")
	}
}

func TestRun_AlternatingPool(t *testing.T) {
	// Pool [0.1, -0.1]: every final growth after one year is +10% or -10%,
	// each with probability ~1/2.
	cfg := Config{Trials: 1000, Years: 1, InitialInvestment: 100, Seed: 3}
	matrix := singleAssetRun(t, []float64{0.1, -0.1}, cfg)
	dist := FinalGrowths(matrix, cfg.InitialInvestment)

	for i, growth := range dist {
		if math.Abs(growth-10) > 1e-9 && math.Abs(growth+10) > 1e-9 {
			t.Fatalf("trial %d: growth = %v, want +10 or -10", i, growth)
		}
	}

	up, err := Probability(dist, AtLeastQuery(0))
	if err != nil {
		t.Fatal(err)
	}
	// ±5 points of sampling noise over 1000 trials is generous: the binomial
	// standard deviation here is about 1.6 points.
	if up < 45 || up > 55 {
		t.Errorf("P(growth > 0) = %v, want about 50", up)
	}
}

func TestRun_Rebalancing(t *testing.T) {
	// Two assets with constant pools: A always +10%, B always -10%.
	// With 50/50 weights and annual rebalancing the yearly delta is exactly
	// zero, so the portfolio stays at the initial value forever. Without
	// rebalancing the growing asset would dominate and drift the value.
	market := NewMarket()
	market.Add(NewAsset("UP", []float64{0.1}))
	market.Add(NewAsset("DOWN", []float64{-0.1}))
	p, err := NewPortfolio(
		Holding{Ticker: "UP", Weight: 0.5},
		Holding{Ticker: "DOWN", Weight: 0.5},
	)
	if err != nil {
		t.Fatal(err)
	}
	cfg := Config{Trials: 3, Years: 10, InitialInvestment: 200, Seed: 1}
	matrix, err := Run(context.Background(), market, p, cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, trajectory := range matrix {
		for y, value := range trajectory {
			if math.Abs(value-200) > 1e-9 {
				t.Fatalf("year %d: value = %v, want 200 (rebalanced offsetting assets)", y, value)
			}
		}
	}
}

func TestRun_EmptyPool(t *testing.T) {
	market := NewMarket()
	market.Add(NewAsset("EMPTY", nil))
	p, err := NewPortfolio(Holding{Ticker: "EMPTY", Weight: 1.0})
	if err != nil {
		t.Fatal(err)
	}
	cfg := Config{Trials: 10, Years: 2, InitialInvestment: 100}
	_, err = Run(context.Background(), market, p, cfg)
	var empty *EmptyReturnPoolError
	if !errors.As(err, &empty) {
		t.Fatalf("Run() error = %v, want EmptyReturnPoolError", err)
	}
	if empty.Ticker != "EMPTY" {
		t.Errorf("EmptyReturnPoolError.Ticker = %q, want %q", empty.Ticker, "EMPTY")
	}
}

func TestRun_UnknownTicker(t *testing.T) {
	market := NewMarket()
	p, err := NewPortfolio(Holding{Ticker: "GHOST", Weight: 1.0})
	if err != nil {
		t.Fatal(err)
	}
	_, err = Run(context.Background(), market, p, Config{Trials: 1, Years: 1, InitialInvestment: 1})
	var empty *EmptyReturnPoolError
	if !errors.As(err, &empty) {
		t.Fatalf("Run() error = %v, want EmptyReturnPoolError for missing asset", err)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	market := NewMarket()
	market.Add(NewAsset("ONE", []float64{0.1}))
	p, _ := NewPortfolio(Holding{Ticker: "ONE", Weight: 1.0})

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero trials", Config{Trials: 0, Years: 1, InitialInvestment: 100}},
		{"negative years", Config{Trials: 1, Years: -1, InitialInvestment: 100}},
		{"zero investment", Config{Trials: 1, Years: 1, InitialInvestment: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Run(context.Background(), market, p, tt.cfg); err == nil {
				t.Error("Run() should fail on invalid config")
			}
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	market := NewMarket()
	market.Add(NewAsset("ONE", []float64{0.1}))
	p, _ := NewPortfolio(Holding{Ticker: "ONE", Weight: 1.0})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, market, p, Config{Trials: 10000, Years: 10, InitialInvestment: 100})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() with cancelled context error = %v, want context.Canceled", err)
	}
}

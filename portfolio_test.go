package montecarlo

import (
	"errors"
	"testing"
)

func TestNewPortfolio(t *testing.T) {
	tests := []struct {
		name     string
		holdings []Holding
		wantErr  bool
	}{
		{
			name:     "single asset full weight",
			holdings: []Holding{{Ticker: "NDX", Weight: 1.0}},
		},
		{
			name: "two assets summing to one",
			holdings: []Holding{
				{Ticker: "IA-DAQ", Weight: 0.7},
				{Ticker: "AAPL", Weight: 0.3},
			},
		},
		{
			name: "four assets with small weights",
			holdings: []Holding{
				{Ticker: "IA-DAQ", Weight: 0.7},
				{Ticker: "AAPL", Weight: 0.24},
				{Ticker: "BTC-USD", Weight: 0.03},
				{Ticker: "ETH-USD", Weight: 0.03},
			},
		},
		{
			name: "sum off by too much",
			holdings: []Holding{
				{Ticker: "AAPL", Weight: 0.5},
				{Ticker: "NDX", Weight: 0.4},
			},
			wantErr: true,
		},
		{
			name:     "negative weight",
			holdings: []Holding{{Ticker: "AAPL", Weight: -0.5}, {Ticker: "NDX", Weight: 1.5}},
			wantErr:  true,
		},
		{
			name:     "weight above one",
			holdings: []Holding{{Ticker: "AAPL", Weight: 1.2}},
			wantErr:  true,
		},
		{
			name:     "zero weight",
			holdings: []Holding{{Ticker: "AAPL", Weight: 0}, {Ticker: "NDX", Weight: 1}},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPortfolio(tt.holdings...)
			if tt.wantErr {
				var invalid *InvalidWeightsError
				if !errors.As(err, &invalid) {
					t.Fatalf("NewPortfolio() error = %v, want InvalidWeightsError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPortfolio() error = %v", err)
			}
		})
	}
}

func TestPortfolio_HoldingsIsACopy(t *testing.T) {
	p, err := NewPortfolio(Holding{Ticker: "AAPL", Weight: 1.0})
	if err != nil {
		t.Fatal(err)
	}
	got := p.Holdings()
	got[0].Weight = 0.5
	if p.Holdings()[0].Weight != 1.0 {
		t.Error("Holdings() must return a copy, the portfolio was mutated")
	}
}

func TestMarket(t *testing.T) {
	m := NewMarket()
	if m.Has("AAPL") {
		t.Error("empty market should not have AAPL")
	}
	m.Add(NewAsset("AAPL", []float64{0.1, -0.1}))
	m.Add(NewAsset("NDX", []float64{0.2}))

	a, ok := m.Get("AAPL")
	if !ok || a.PoolSize() != 2 {
		t.Errorf("Get(AAPL) = %v, %v, want pool of 2", a, ok)
	}

	// replacing keeps a single entry
	m.Add(NewAsset("AAPL", []float64{0.3}))
	a, _ = m.Get("AAPL")
	if a.PoolSize() != 1 {
		t.Errorf("after replace, pool size = %d, want 1", a.PoolSize())
	}
	want := []string{"AAPL", "NDX"}
	got := m.Tickers()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Tickers() = %v, want %v", got, want)
	}
}

func TestAsset_Immutable(t *testing.T) {
	pool := []float64{0.1, 0.2}
	a := NewAsset("AAPL", pool)
	pool[0] = 99 // caller's slice must not leak into the asset
	if got := a.Pool(); got[0] != 0.1 {
		t.Errorf("asset pool leaked caller mutation: got %v", got)
	}
	got := a.Pool()
	got[1] = 99 // and neither the other way around
	if a.Pool()[1] != 0.2 {
		t.Error("Pool() must return a copy")
	}
}

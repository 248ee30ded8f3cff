package montecarlo

// Market holds the return pools for a set of assets, indexed by ticker.
// It decouples the simulation from any live provider handle: the engine only
// ever sees ticker strings and immutable Asset records.
type Market struct {
	assets []Asset
	index  map[string]int
}

// NewMarket returns a new empty asset collection.
func NewMarket() *Market {
	return &Market{
		assets: make([]Asset, 0),
		index:  make(map[string]int),
	}
}

func (m *Market) Has(ticker string) bool {
	_, ok := m.index[ticker]
	return ok
}

// Get returns the asset for 'ticker' and whether it exists.
func (m *Market) Get(ticker string) (Asset, bool) {
	i, ok := m.index[ticker]
	if !ok {
		return Asset{}, false
	}
	return m.assets[i], true
}

// Add inserts or replaces the asset under its ticker.
func (m *Market) Add(a Asset) {
	if i, ok := m.index[a.ticker]; ok {
		m.assets[i] = a
		return
	}
	m.index[a.ticker] = len(m.assets)
	m.assets = append(m.assets, a)
}

// Tickers returns all tickers in insertion order.
func (m *Market) Tickers() []string {
	tickers := make([]string, len(m.assets))
	for i, a := range m.assets {
		tickers[i] = a.ticker
	}
	return tickers
}

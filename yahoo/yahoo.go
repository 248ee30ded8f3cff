// Package yahoo fetches historical asset prices from the Yahoo Finance
// chart API, the free unofficial source the simulator feeds on. Responses
// are cached on disk for a day, so a simulation session only hits the
// network once per ticker.
package yahoo

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/montecarlo/date"
	"github.com/shopspring/decimal"
)

const chartURL = "https://query1.finance.yahoo.com/v8/finance/chart/%s?range=max&interval=1d&events=history"

// Client queries the Yahoo Finance chart API.
type Client struct {
	http *http.Client
}

// NewClient returns a Client whose responses are disk-cached daily.
func NewClient() *Client {
	return &Client{http: newDailyCachingClient()}
}

// chartResponse mirrors the part of the chart payload carrying daily bars.
// Closes are decoded as decimals to keep the quoted prices exact; Yahoo
// interleaves nulls on non-trading days, hence the pointers.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*decimal.Decimal `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// DailyCloses returns the full available daily close history of a ticker,
// as quoted on Yahoo Finance (e.g. "AAPL", "BTC-USD", "^NDX").
func (c *Client) DailyCloses(ticker string) (*date.History[float64], error) {
	addr := fmt.Sprintf(chartURL, ticker)
	var payload chartResponse
	if err := jwget(c.http, addr, &payload); err != nil {
		return nil, fmt.Errorf("cannot fetch history for %q: %w", ticker, err)
	}
	return payload.history(ticker)
}

func (r *chartResponse) history(ticker string) (*date.History[float64], error) {
	if r.Chart.Error != nil {
		return nil, fmt.Errorf("chart API error for %q: %s: %s", ticker, r.Chart.Error.Code, r.Chart.Error.Description)
	}
	if len(r.Chart.Result) == 0 || len(r.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no data for %q", ticker)
	}
	timestamps := r.Chart.Result[0].Timestamp
	closes := r.Chart.Result[0].Indicators.Quote[0].Close

	h := new(date.History[float64])
	for i, ts := range timestamps {
		if i >= len(closes) || closes[i] == nil || closes[i].IsZero() {
			continue
		}
		// Same-day duplicates resolve to the last bar, which is the close.
		h.Append(date.FromUnix(ts), closes[i].InexactFloat64())
	}
	if h.Len() == 0 {
		return nil, fmt.Errorf("no usable close for %q", ticker)
	}
	return h, nil
}

// Meta describes a ticker as quoted by the chart API.
type Meta struct {
	Currency  string
	LastClose float64
}

// Meta returns the quote currency and the latest market price of a ticker.
// The payload nests these deep in the chart meta object, so they are plucked
// out by path rather than modeled as a struct.
func (c *Client) Meta(ticker string) (Meta, error) {
	addr := fmt.Sprintf(chartURL, ticker)
	var jobj any
	if err := jwget(c.http, addr, &jobj); err != nil {
		return Meta{}, fmt.Errorf("cannot fetch meta for %q: %w", ticker, err)
	}
	currency, err := pluckString(jobj, "$.chart.result[0].meta.currency")
	if err != nil {
		return Meta{}, fmt.Errorf("error parsing meta for %q: %w", ticker, err)
	}
	last, err := pluckFloat(jobj, "$.chart.result[0].meta.regularMarketPrice")
	if err != nil {
		return Meta{}, fmt.Errorf("error parsing meta for %q: %w", ticker, err)
	}
	return Meta{Currency: currency, LastClose: last}, nil
}

// pluck* evaluate a jsonpath and unwrap the single expected value.
// jsonpath is never clear about whether it returns a list of one answer or a
// single answer, so both shapes are accepted.

func pluck(jobj any, path string) (any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

func pluckString(jobj any, path string) (string, error) {
	jval, err := pluck(jobj, path)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("path %q: not a string: %v", path, jval)
	}
	return s, nil
}

func pluckFloat(jobj any, path string) (float64, error) {
	jval, err := pluck(jobj, path)
	if err != nil {
		return 0, err
	}
	f, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("path %q: not a float: %v", path, jval)
	}
	return f, nil
}

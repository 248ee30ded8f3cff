package montecarlo

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// This file persists the portfolio definition as a JSONL file, one holding
// per line, human-readable and git-friendly:
//
//	{"ticker":"AAPL","weight":0.24}
//	{"ticker":"BTC-USD","weight":0.03}

// DecodePortfolio parses a portfolio definition from r.
// filename is for error messages only.
func DecodePortfolio(filename string, r io.Reader) (*Portfolio, error) {
	var holdings []Holding
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		txt := strings.TrimSpace(scanner.Text())
		if txt == "" || strings.HasPrefix(txt, "//") {
			continue
		}
		var h Holding
		if err := json.Unmarshal([]byte(txt), &h); err != nil {
			return nil, fmt.Errorf("format error in %q line %d: %w", filename, line, err)
		}
		if h.Ticker == "" {
			return nil, fmt.Errorf("format error in %q line %d: missing ticker", filename, line)
		}
		if seen[h.Ticker] {
			return nil, fmt.Errorf("format error in %q line %d: ticker %q is already defined", filename, line, h.Ticker)
		}
		seen[h.Ticker] = true
		holdings = append(holdings, h)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %q: %w", filename, err)
	}
	return NewPortfolio(holdings...)
}

// EncodePortfolio writes the portfolio definition to w in JSONL format.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	for _, h := range p.Holdings() {
		b, err := json.Marshal(h)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, string(b)); err != nil {
			return err
		}
	}
	return nil
}

// LoadPortfolio reads and validates the portfolio definition file at path.
func LoadPortfolio(path string) (*Portfolio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodePortfolio(path, f)
}

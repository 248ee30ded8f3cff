package montecarlo

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a given currency. It only exists for
// reporting: the simulation itself works on plain floats.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money from a float amount and an ISO currency code.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string     { return m.cur }
func (m Money) IsZero() bool         { return m.value.IsZero() }
func (m Money) Equal(n Money) bool   { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) AsFloat() float64     { return m.value.InexactFloat64() }
func (m Money) Mul(f float64) Money  { return Money{value: m.value.Mul(decimal.NewFromFloat(f)), cur: m.cur} }

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

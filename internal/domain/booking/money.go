package booking

import "math"

// Money is an amount in minor units. Catalog prices arrive as decimals and are
// rounded once on the way in so totals multiply exactly.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromAmount(amount float64) Money {
	return Money{cents: int64(math.Round(amount * 100))}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

// Times reports false when the product does not fit in int64 or n is negative.
func (m Money) Times(n int) (Money, bool) {
	if n < 0 {
		return Money{}, false
	}
	if n == 0 || m.cents == 0 {
		return Money{}, true
	}
	factor := int64(n)
	if m.cents > math.MaxInt64/factor || m.cents < math.MinInt64/factor {
		return Money{}, false
	}
	return Money{cents: m.cents * factor}, true
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

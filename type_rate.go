package pnlsheet

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Rate is a fee rate expressed in basis points (1bp = 0.01%).
type Rate int

// Ratio returns the rate as a plain ratio, 200bp is 0.02.
func (r Rate) Ratio() decimal.Decimal { return newDecimal(int(r)).Shift(-4) }

// Apply returns m*r rounded half away from zero to the nearest minor unit.
func (r Rate) Apply(m Money) Money {
	return Money(newDecimal(int64(m)).Mul(r.Ratio()).Round(0).IntPart())
}

// String returns the rate as a percentage, like "0.5%".
func (r Rate) String() string { return r.Ratio().Shift(2).String() + "%" }

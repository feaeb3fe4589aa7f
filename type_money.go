package pnlsheet

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Unit is the suffix displayed after totals.
const Unit = "U"

// Money represents an amount in minor units (cents) of the ledger currency.
type Money int64

// formatters for the two display flavours: with and without the unit.
var (
	unitFormatter  = money.NewFormatter(2, ".", ",", Unit, "1 $")
	plainFormatter = money.NewFormatter(2, ".", ",", "", "1")
)

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal { return decimal.New(int64(m), -2) }

// String returns the amount with thousands separators and the unit, like "1,234.56 U".
func (m Money) String() string { return unitFormatter.Format(int64(m)) }

// Plain returns the amount with thousands separators and no unit, like "1,234.56".
func (m Money) Plain() string { return plainFormatter.Format(int64(m)) }

// Fixed returns a machine friendly representation, like "1234.56".
func (m Money) Fixed() string { return m.Decimal().StringFixed(2) }

// Sign classifies the amount for display.
func (m Money) Sign() Sign {
	switch {
	case m.IsPositive():
		return Positive
	case m.IsNegative():
		return Negative
	default:
		return Neutral
	}
}

// Add returns m+n.
func (m Money) Add(n Money) Money { return m + n }

func (m Money) IsNegative() bool { return m < 0 }
func (m Money) IsPositive() bool { return m > 0 }

package pnlsheet

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Normalize turns user typed text into a canonical signed decimal text.
//
// Everything but digits, '.' and '-' is dropped (whitespace and thousands
// separators included). Only the first '.' is kept as the decimal point, the
// digits after the following ones are concatenated: "1.2.3" gives "1.23".
// A '-' is only meaningful as a leading sign, anywhere else it is discarded.
// Empty input gives empty output, which reads as zero downstream.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	seenPoint := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			if !seenPoint {
				seenPoint = true
				b.WriteRune(r)
			}
		case r == '-':
			// a sign only counts in front of everything that was kept.
			if b.Len() == 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// ToMinorUnits converts user typed text into minor units.
//
// It never fails: anything that does not read as a number is zero. The value
// is rounded half away from zero to the nearest minor unit.
func ToMinorUnits(raw string) Money {
	s := Normalize(raw)
	switch s {
	case "", "-", ".", "-.":
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	cents := d.Shift(2).Round(0)
	if !cents.BigInt().IsInt64() {
		return 0
	}
	return Money(cents.IntPart())
}

package pnlsheet

import "github.com/shopspring/decimal"

// Sign is the display classification of a numeric field.
type Sign int

const (
	Neutral Sign = iota
	Positive
	Negative
)

// String returns the class name used by views: "pos", "neg" or "muted".
func (s Sign) String() string {
	switch s {
	case Positive:
		return "pos"
	case Negative:
		return "neg"
	default:
		return "muted"
	}
}

// ClassifySign classifies user typed numeric text. Zero and unparseable text are Neutral.
func ClassifySign(text string) Sign {
	d, err := decimal.NewFromString(Normalize(text))
	if err != nil {
		return Neutral
	}
	switch d.Sign() {
	case 1:
		return Positive
	case -1:
		return Negative
	default:
		return Neutral
	}
}

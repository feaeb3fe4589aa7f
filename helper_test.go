package pnlsheet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ledgerOf is a helper for test to build a ledger from raw rows.
func ledgerOf(inputs ...RowInput) *Ledger {
	l := NewLedger()
	for _, in := range inputs {
		l.Add(in)
	}
	return l
}

// in is a helper for test to create a RowInput with the default status.
func in(pair, amount, profit string) RowInput {
	return RowInput{Pair: pair, Amount: amount, Profit: profit}
}

// assertInputs checks that the ledger rows are exactly 'want'.
func assertInputs(t *testing.T, l *Ledger, want []RowInput) {
	t.Helper()
	if diff := cmp.Diff(want, l.Inputs()); diff != "" {
		t.Errorf("ledger rows mismatch (-want +got):\n%s", diff)
	}
}

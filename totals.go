package pnlsheet

// Totals are the footer sums of a ledger.
//
// They are never stored: they are recomputed from the rows each time they are needed.
type Totals struct {
	Fees
	Rows int // number of rows summed
}

// Aggregate sums the fees of 'rows' tier by tier, in minor units.
// The result does not depend on the order of the rows.
func Aggregate(rows ...Row) Totals {
	var t Totals
	for _, r := range rows {
		t.Fees = t.Fees.Add(r.Fees())
	}
	t.Rows = len(rows)
	return t
}

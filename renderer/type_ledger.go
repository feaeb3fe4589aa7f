package renderer

import (
	"github.com/etnz/pnlsheet"
)

// Empty is displayed in place of an empty cell.
const Empty = "—"

// Ledger is the read-only view of a ledger, as displayed by every renderer.
//
// All cells are already formatted. Empty input cells hold Empty. Numeric cells
// come with their sign class ("pos", "neg" or "muted").
type Ledger struct {
	Date   string
	Rows   []Row
	Totals Totals
}

// Row is a displayed row.
type Row struct {
	Index       int // 1-based
	Pair        string
	Amount      string
	L1, L2, L3  string
	L1Class     string
	L2Class     string
	L3Class     string
	Profit      string
	ProfitClass string
	Status      string
	StatusClass string
	status      pnlsheet.Status
}

// Totals is the displayed footer, fee totals carry the unit.
type Totals struct {
	L1, L2, L3                string
	L1Class, L2Class, L3Class string
}

// NewLedger builds the view of l.
func NewLedger(l *pnlsheet.Ledger) *Ledger {
	v := &Ledger{Date: l.Date().String()}
	for i, r := range l.Rows() {
		fees := r.Fees()
		row := Row{
			Index:       i + 1,
			Pair:        orEmpty(r.Pair),
			Amount:      Empty,
			L1:          fees.L1.Plain(),
			L2:          fees.L2.Plain(),
			L3:          fees.L3.Plain(),
			L1Class:     fees.L1.Sign().String(),
			L2Class:     fees.L2.Sign().String(),
			L3Class:     fees.L3.Sign().String(),
			Profit:      orEmpty(r.Profit),
			ProfitClass: r.ProfitSign().String(),
			Status:      r.Status.Label(),
			StatusClass: r.Status.Class(),
			status:      r.Status,
		}
		if r.Amount() != "" {
			row.Amount = r.Principal().Plain()
		}
		v.Rows = append(v.Rows, row)
	}
	t := l.Totals()
	v.Totals = Totals{
		L1:      t.L1.String(),
		L2:      t.L2.String(),
		L3:      t.L3.String(),
		L1Class: t.L1.Sign().String(),
		L2Class: t.L2.Sign().String(),
		L3Class: t.L3.Sign().String(),
	}
	return v
}

func orEmpty(s string) string {
	if s == "" {
		return Empty
	}
	return s
}

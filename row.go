package pnlsheet

// RowInput is a row as typed: amount and profit are raw text.
//
// It is what the bulk import parser produces and what the persisted document holds.
type RowInput struct {
	Pair   string
	Amount string
	Profit string
	Status Status
}

// Row is one ledger entry.
//
// The principal and the fees are always derived from the amount text, they
// are recomputed by SetAmount and cannot be edited on their own.
type Row struct {
	Pair   string
	Profit string // signed decimal text, stored as typed
	Status Status

	amount    string
	principal Money
	fees      Fees
}

// NewRow materializes a RowInput: the amount is normalized and the fees computed.
func NewRow(in RowInput) Row {
	r := Row{Pair: in.Pair, Profit: in.Profit, Status: in.Status.coerce()}
	r.SetAmount(in.Amount)
	return r
}

// SetAmount replaces the amount text and recomputes the principal and the fees.
func (r *Row) SetAmount(amount string) {
	r.amount = amount
	r.principal = ToMinorUnits(amount)
	r.fees = ComputeFees(r.principal)
}

// Amount returns the amount as typed.
func (r Row) Amount() string { return r.amount }

// Principal returns the amount in minor units.
func (r Row) Principal() Money { return r.principal }

// Fees returns the tiered fees computed from the principal.
func (r Row) Fees() Fees { return r.fees }

// ProfitSign classifies the profit text for display.
func (r Row) ProfitSign() Sign { return ClassifySign(r.Profit) }

// Input returns the row as it would be persisted.
func (r Row) Input() RowInput {
	return RowInput{Pair: r.Pair, Amount: r.amount, Profit: r.Profit, Status: r.Status}
}

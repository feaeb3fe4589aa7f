package pnlsheet

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/etnz/pnlsheet/date"
)

// ErrRowIndex is returned when a row index does not address a row of the ledger.
var ErrRowIndex = errors.New("no such row")

// Ledger represents an ordered list of rows and the trade date they belong to.
//
// In a Ledger rows are always in insertion order, which is also the display
// and the persisted order.
type Ledger struct {
	date date.Date
	rows []Row
}

// NewLedger creates a ledger with no rows, dated today.
func NewLedger() *Ledger {
	return &Ledger{date: date.Today(), rows: make([]Row, 0)}
}

// DefaultLedger creates a ledger with a single empty row, dated today.
// This is what a user sees the first time, or after a reset.
func DefaultLedger() *Ledger {
	l := NewLedger()
	l.rows = append(l.rows, NewRow(RowInput{}))
	return l
}

// Date returns the trade date.
func (l *Ledger) Date() date.Date { return l.date }

// SetDate sets the trade date, a zero date means today.
func (l *Ledger) SetDate(d date.Date) {
	if d.IsZero() {
		d = date.Today()
	}
	l.date = d
}

// Len returns the number of rows.
func (l *Ledger) Len() int { return len(l.rows) }

// Row returns the i-th row.
func (l *Ledger) Row(i int) (Row, error) {
	if err := l.check(i); err != nil {
		return Row{}, err
	}
	return l.rows[i], nil
}

// Rows iterates over the rows in order, with their index.
func (l *Ledger) Rows() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i, r := range l.rows {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Inputs returns all rows as they would be persisted.
func (l *Ledger) Inputs() []RowInput {
	inputs := make([]RowInput, 0, len(l.rows))
	for _, r := range l.rows {
		inputs = append(inputs, r.Input())
	}
	return inputs
}

// Add appends a row and returns its index.
func (l *Ledger) Add(in RowInput) int {
	l.rows = append(l.rows, NewRow(in))
	return len(l.rows) - 1
}

// Delete removes the i-th row. Deleting the last remaining row leaves an empty ledger.
func (l *Ledger) Delete(i int) error {
	if err := l.check(i); err != nil {
		return err
	}
	l.rows = slices.Delete(l.rows, i, i+1)
	return nil
}

// Replace replaces all the rows, as a bulk import does.
// An empty list yields a single empty row, never an empty ledger.
func (l *Ledger) Replace(inputs []RowInput) {
	rows := make([]Row, 0, max(len(inputs), 1))
	for _, in := range inputs {
		rows = append(rows, NewRow(in))
	}
	if len(rows) == 0 {
		rows = append(rows, NewRow(RowInput{}))
	}
	l.rows = rows
}

// Reset replaces the content with a single empty row, dated today.
func (l *Ledger) Reset() {
	l.date = date.Today()
	l.rows = []Row{NewRow(RowInput{})}
}

// Update applies 'edit' to the i-th row.
// Edits go through Row methods so that fees follow the amount.
func (l *Ledger) Update(i int, edit func(*Row)) error {
	if err := l.check(i); err != nil {
		return err
	}
	edit(&l.rows[i])
	return nil
}

// SetPair sets the pair of the i-th row.
func (l *Ledger) SetPair(i int, pair string) error {
	return l.Update(i, func(r *Row) { r.Pair = pair })
}

// SetAmount sets the amount of the i-th row, its fees are recomputed.
func (l *Ledger) SetAmount(i int, amount string) error {
	return l.Update(i, func(r *Row) { r.SetAmount(amount) })
}

// SetProfit sets the profit of the i-th row.
func (l *Ledger) SetProfit(i int, profit string) error {
	return l.Update(i, func(r *Row) { r.Profit = profit })
}

// SetStatus sets the status of the i-th row.
func (l *Ledger) SetStatus(i int, s Status) error {
	return l.Update(i, func(r *Row) { r.Status = s.coerce() })
}

// Totals returns the footer totals of the current rows.
func (l *Ledger) Totals() Totals { return Aggregate(l.rows...) }

// Clone returns a detached copy of the ledger, safe to hand to an exporter.
func (l *Ledger) Clone() *Ledger {
	return &Ledger{date: l.date, rows: slices.Clone(l.rows)}
}

func (l *Ledger) check(i int) error {
	if i < 0 || i >= len(l.rows) {
		return fmt.Errorf("row %d of %d: %w", i+1, len(l.rows), ErrRowIndex)
	}
	return nil
}

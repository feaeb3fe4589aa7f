package pnlsheet

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVFilename is the default name of a CSV export.
const CSVFilename = "pnl.csv"

// CSVHeader is the header line of a CSV export.
var CSVHeader = []string{"Pair", "Amount", "L1", "L2", "L3", "Profit", "Status"}

// ExportCSV writes the ledger rows to w, one record per row in display order.
//
// Amount and fees are plain decimals with two digits ("1234.50"), the profit
// is written as typed and the status as its label.
func ExportCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}
	for i, r := range l.Rows() {
		fees := r.Fees()
		record := []string{
			r.Pair,
			r.Principal().Fixed(),
			fees.L1.Fixed(),
			fees.L2.Fixed(),
			fees.L3.Fixed(),
			r.Profit,
			r.Status.Label(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot write csv: %w", err)
	}
	return nil
}

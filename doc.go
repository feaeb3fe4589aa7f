// Package pnlsheet provides the core of a small ledger of trading positions.
//
// A Ledger is an ordered list of rows dated by a trade date. Each row holds a
// pair, a principal amount, three tiered fees derived from that amount, a free
// text profit and an outcome status.
//
// The package covers:
//   - Number normalization: user typed text is sanitized into a canonical
//     decimal and converted into minor units. Malformed input reads as zero, it
//     never blocks data entry.
//   - Fees: three tiers (2%, 1%, 0.5%) computed in fixed point, each rounded on
//     its own.
//   - Bulk import: text pasted from a spreadsheet is parsed into rows and
//     replaces the whole ledger.
//   - Totals: footer sums recomputed from the rows, never stored.
//   - Encoding: the JSON document kept in the store, and the CSV export.
//
// Persistence lives in the store package, read only views in renderer, and
// the `pnl` command line in cmd.
package pnlsheet

package pnlsheet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/etnz/pnlsheet/date"
)

// Key is the default key the ledger document is stored under.
const Key = "bb_v7"

// errNotADocument is returned when the JSON value is not an object.
var errNotADocument = errors.New("not a ledger document")

// MarshalJSON encodes a row as {"pair","amount","profit","status"}, amounts as typed.
func (r Row) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("pair", r.Pair)
	w.Append("amount", r.amount)
	w.Append("profit", r.Profit)
	w.Append("status", r.Status)
	return w.MarshalJSON()
}

// MarshalJSON encodes the ledger as {"date": "YYYY-MM-DD", "rows": [...]}.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	rows := l.rows
	if rows == nil {
		rows = []Row{}
	}
	var w jsonObjectWriter
	w.Append("date", l.date)
	w.Append("rows", rows)
	return w.MarshalJSON()
}

// EncodeLedger writes the ledger document to w, followed by a newline.
func EncodeLedger(w io.Writer, l *Ledger) error {
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}

// DecodeLedger reads a ledger document from r.
//
// Decoding is lenient on content: a missing or invalid date is today, a row
// that is not an object is an empty row, a row without profit has an empty
// profit, numbers are accepted where text is expected and unknown statuses are
// "hit". Only a stream that is not a JSON object is an error.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&fields); err != nil {
		return nil, fmt.Errorf("could not decode ledger document: %w", err)
	}
	if fields == nil {
		return nil, errNotADocument
	}

	l := NewLedger()
	if day := jsonText(fields["date"]); day != "" {
		if d, err := date.Parse(day); err == nil {
			l.date = d
		}
	}

	// rows that are not a list mean no rows at all.
	var rows []json.RawMessage
	if err := json.Unmarshal(fields["rows"], &rows); err == nil {
		for _, raw := range rows {
			l.rows = append(l.rows, NewRow(decodeRow(raw)))
		}
	}
	return l, nil
}

// decodeRow reads a persisted row, anything that is not an object is an empty row.
func decodeRow(raw json.RawMessage) RowInput {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return RowInput{}
	}
	return RowInput{
		Pair:   jsonText(fields["pair"]),
		Amount: jsonText(fields["amount"]),
		Profit: jsonText(fields["profit"]),
		Status: StatusOf(jsonText(fields["status"])),
	}
}

// jsonText returns a JSON string or number as text, anything else as "".
func jsonText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// RestoreLedger decodes a stored document and always returns a usable ledger.
//
// Empty data gives the default single row ledger. A corrupt document gives the
// default ledger too, along with the decoding error so that callers can report
// that the stored record was discarded.
func RestoreLedger(data []byte) (*Ledger, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return DefaultLedger(), nil
	}
	l, err := DecodeLedger(bytes.NewReader(data))
	if err != nil {
		return DefaultLedger(), err
	}
	return l, nil
}

package pnlsheet

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/etnz/pnlsheet/date"
	"github.com/google/go-cmp/cmp"
)

func TestEncodeLedger(t *testing.T) {
	l := ledgerOf(
		RowInput{Pair: "BTC/USDT", Amount: "1,000", Profit: "-5", Status: Miss},
		in("ETH/USDT", "", ""),
	)
	l.SetDate(date.New(2025, time.March, 4))

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() error: %v", err)
	}
	want := `{"date":"2025-03-04","rows":[{"pair":"BTC/USDT","amount":"1,000","profit":"-5","status":"miss"},{"pair":"ETH/USDT","amount":"","profit":"","status":"hit"}]}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("EncodeLedger() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeEmptyLedger(t *testing.T) {
	l := NewLedger()
	l.SetDate(date.New(2025, time.March, 4))
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() error: %v", err)
	}
	if got, want := buf.String(), `{"date":"2025-03-04","rows":[]}`+"\n"; got != want {
		t.Errorf("EncodeLedger() = %s, want %s", got, want)
	}
}

func TestEncodeDecodeLedger(t *testing.T) {
	rows := []RowInput{
		{Pair: "BTC/USDT", Amount: "1,234.5", Profit: "12", Status: Over},
		{Pair: "ETH, the coin", Amount: "200", Profit: "-3.5", Status: Progress},
		{Pair: `SOL "quoted"`, Amount: "0.015", Profit: "", Status: Miss},
	}
	l := ledgerOf(rows...)
	day := date.New(2024, time.December, 31)
	l.SetDate(day)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() error: %v", err)
	}
	got, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() error: %v", err)
	}
	if got.Date() != day {
		t.Errorf("Date() = %v, want %v", got.Date(), day)
	}
	assertInputs(t, got, rows)
	if diff := cmp.Diff(l.Totals(), got.Totals()); diff != "" {
		t.Errorf("Totals() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeLedgerLenient(t *testing.T) {
	doc := `{"date":"2025-8-1","rows":[
		{"pair":"BTC/USDT","amount":"100","status":"over"},
		null,
		{"pair":"ETH/USDT","amount":250.5,"profit":-3,"status":"bogus"},
		"garbage"
	]}`
	l, err := DecodeLedger(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeLedger() error: %v", err)
	}
	if want := date.New(2025, time.August, 1); l.Date() != want {
		t.Errorf("Date() = %v, want %v", l.Date(), want)
	}
	assertInputs(t, l, []RowInput{
		{Pair: "BTC/USDT", Amount: "100", Profit: "", Status: Over},
		{},
		{Pair: "ETH/USDT", Amount: "250.5", Profit: "-3", Status: Hit},
		{},
	})
	r, _ := l.Row(2)
	if r.Principal() != 25050 {
		t.Errorf("Principal() = %d, want 25050", r.Principal())
	}
}

func TestDecodeLedgerMissingParts(t *testing.T) {
	testCases := []struct {
		name     string
		doc      string
		wantRows int
	}{
		{"no date", `{"rows":[{"pair":"A"}]}`, 1},
		{"invalid date", `{"date":"yesterday","rows":[{"pair":"A"}]}`, 1},
		{"no rows", `{"date":"2025-01-01"}`, 0},
		{"rows not a list", `{"rows":{"pair":"A"}}`, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := DecodeLedger(strings.NewReader(tc.doc))
			if err != nil {
				t.Fatalf("DecodeLedger() error: %v", err)
			}
			if l.Len() != tc.wantRows {
				t.Errorf("Len() = %d, want %d", l.Len(), tc.wantRows)
			}
			if l.Date().IsZero() {
				t.Error("Date() is zero, want a date")
			}
		})
	}
}

func TestDecodeLedgerErrors(t *testing.T) {
	for _, doc := range []string{"", "{", "null", "[1,2]", `"text"`} {
		if _, err := DecodeLedger(strings.NewReader(doc)); err == nil {
			t.Errorf("DecodeLedger(%q) expected an error", doc)
		}
	}
}

func TestRestoreLedger(t *testing.T) {
	testCases := []struct {
		name     string
		data     string
		wantErr  bool
		wantRows []RowInput
	}{
		{"absent", "", false, []RowInput{{}}},
		{"blank", " \n", false, []RowInput{{}}},
		{"corrupt", `{"date":"2025-01-01","rows":[`, true, []RowInput{{}}},
		{"null", "null", true, []RowInput{{}}},
		{"valid", `{"date":"2025-01-01","rows":[{"pair":"A","amount":"1","profit":"2","status":"miss"}]}`, false,
			[]RowInput{{Pair: "A", Amount: "1", Profit: "2", Status: Miss}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := RestoreLedger([]byte(tc.data))
			if (err != nil) != tc.wantErr {
				t.Errorf("RestoreLedger() error = %v, wantErr %v", err, tc.wantErr)
			}
			if l == nil {
				t.Fatal("RestoreLedger() returned no ledger")
			}
			assertInputs(t, l, tc.wantRows)
		})
	}
}

func TestExportCSV(t *testing.T) {
	l := ledgerOf(
		RowInput{Pair: "BTC, USDT", Amount: "1,234.5", Profit: "+12", Status: Over},
		RowInput{Pair: `say "hi"`, Amount: "abc", Profit: "-1", Status: Miss},
		RowInput{Pair: "multi\nline", Amount: "100", Profit: "", Status: Progress},
	)

	var buf bytes.Buffer
	if err := ExportCSV(&buf, l); err != nil {
		t.Fatalf("ExportCSV() error: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "Pair,Amount,L1,L2,L3,Profit,Status\n\"BTC, USDT\",1234.50,") {
		t.Errorf("ExportCSV() unexpected start:\n%s", buf.String())
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("cannot read back csv: %v", err)
	}
	want := [][]string{
		CSVHeader,
		{"BTC, USDT", "1234.50", "24.69", "12.35", "6.17", "+12", "Target exceeded"},
		{`say "hi"`, "0.00", "0.00", "0.00", "0.00", "-1", "Target missed"},
		{"multi\nline", "100.00", "2.00", "1.00", "0.50", "", "In progress"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("ExportCSV() records mismatch (-want +got):\n%s", diff)
	}
}

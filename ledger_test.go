package pnlsheet

import (
	"errors"
	"testing"

	"github.com/etnz/pnlsheet/date"
)

func TestLedgerTotals(t *testing.T) {
	// principals of 5000, 1200 and 800 minor units.
	a, b, c := in("A", "50", ""), in("B", "12", ""), in("C", "8", "")
	want := Fees{L1: 100 + 24 + 16, L2: 50 + 12 + 8, L3: 25 + 6 + 4}

	orders := [][]RowInput{{a, b, c}, {c, b, a}, {b, a, c}, {c, a, b}}
	for _, order := range orders {
		l := ledgerOf(order...)
		got := l.Totals()
		if got.Fees != want {
			t.Errorf("Totals() for %v = %+v, want %+v", order, got.Fees, want)
		}
		if got.Rows != 3 {
			t.Errorf("Totals().Rows = %d, want 3", got.Rows)
		}
		// totals are the sum of the individual fees, and asking twice changes nothing.
		var sum Fees
		for _, r := range l.Rows() {
			sum = sum.Add(ComputeFees(r.Principal()))
		}
		if again := l.Totals(); again.Fees != sum {
			t.Errorf("Totals() = %+v, want sum of row fees %+v", again.Fees, sum)
		}
	}
}

func TestLedgerTotalsFollowEdits(t *testing.T) {
	l := ledgerOf(in("A", "100", ""), in("B", "50", ""))
	if got := l.Totals().L1; got != 300 {
		t.Fatalf("Totals().L1 = %d, want 300", got)
	}

	if err := l.SetAmount(1, "150"); err != nil {
		t.Fatalf("SetAmount() error: %v", err)
	}
	if got := l.Totals().L1; got != 500 {
		t.Errorf("after SetAmount Totals().L1 = %d, want 500", got)
	}
	r, _ := l.Row(1)
	if r.Fees() != ComputeFees(15000) {
		t.Errorf("row fees = %+v, want %+v", r.Fees(), ComputeFees(15000))
	}

	l.Add(in("C", "1,000", ""))
	if got := l.Totals().L1; got != 2500 {
		t.Errorf("after Add Totals().L1 = %d, want 2500", got)
	}

	if err := l.Delete(0); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if got := l.Totals().L1; got != 2300 {
		t.Errorf("after Delete Totals().L1 = %d, want 2300", got)
	}
}

func TestLedgerDeleteLastRow(t *testing.T) {
	l := DefaultLedger()
	if l.Len() != 1 {
		t.Fatalf("DefaultLedger().Len() = %d, want 1", l.Len())
	}
	if err := l.Delete(0); err != nil {
		t.Fatalf("Delete(0) error: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
	if got := l.Totals(); got != (Totals{}) {
		t.Errorf("Totals() of an empty ledger = %+v, want zero", got)
	}
	// still addressable
	if i := l.Add(in("BTC/USDT", "1", "")); i != 0 {
		t.Errorf("Add() = %d, want 0", i)
	}
}

func TestLedgerRowIndex(t *testing.T) {
	l := ledgerOf(in("A", "1", "2"))
	before := l.Inputs()

	checks := map[string]error{
		"Delete(1)":     l.Delete(1),
		"Delete(-1)":    l.Delete(-1),
		"SetAmount(5)":  l.SetAmount(5, "10"),
		"SetPair(1)":    l.SetPair(1, "X"),
		"SetProfit(2)":  l.SetProfit(2, "1"),
		"SetStatus(-2)": l.SetStatus(-2, Miss),
	}
	for name, err := range checks {
		if !errors.Is(err, ErrRowIndex) {
			t.Errorf("%s error = %v, want ErrRowIndex", name, err)
		}
	}
	if _, err := l.Row(3); !errors.Is(err, ErrRowIndex) {
		t.Errorf("Row(3) error = %v, want ErrRowIndex", err)
	}
	assertInputs(t, l, before)
}

func TestLedgerReplace(t *testing.T) {
	l := ledgerOf(in("A", "1", "2"), in("B", "3", "4"))

	rows, err := ParseBulk("BTC/USDT\t100\t5\nETH/USDT\t200\t10\tmiss")
	if err != nil {
		t.Fatal(err)
	}
	l.Replace(rows)
	assertInputs(t, l, []RowInput{
		in("BTC/USDT", "100", "5"),
		{Pair: "ETH/USDT", Amount: "200", Profit: "10", Status: Miss},
	})
	if got := l.Totals().L1; got != 600 {
		t.Errorf("Totals().L1 = %d, want 600", got)
	}

	l.Replace(nil)
	assertInputs(t, l, []RowInput{{}})
}

func TestLedgerEdits(t *testing.T) {
	l := ledgerOf(in("A", "1", "2"))
	if err := l.SetPair(0, "ETH/USDT"); err != nil {
		t.Fatal(err)
	}
	if err := l.SetProfit(0, "-3"); err != nil {
		t.Fatal(err)
	}
	if err := l.SetStatus(0, Status(99)); err != nil {
		t.Fatal(err)
	}
	r, _ := l.Row(0)
	if r.Pair != "ETH/USDT" || r.Profit != "-3" || r.Status != Hit {
		t.Errorf("Row(0) = %+v, want pair ETH/USDT, profit -3, status hit", r.Input())
	}
	if r.ProfitSign() != Negative {
		t.Errorf("ProfitSign() = %v, want neg", r.ProfitSign())
	}
	if err := l.SetStatus(0, Over); err != nil {
		t.Fatal(err)
	}
	if r, _ := l.Row(0); r.Status != Over {
		t.Errorf("Status = %v, want over", r.Status)
	}
}

func TestLedgerClone(t *testing.T) {
	l := ledgerOf(in("A", "1", "2"))
	l.SetDate(date.New(2025, 1, 2))
	c := l.Clone()

	l.SetAmount(0, "100")
	l.Add(in("B", "1", "1"))

	if c.Len() != 1 {
		t.Errorf("clone Len() = %d, want 1", c.Len())
	}
	r, _ := c.Row(0)
	if r.Amount() != "1" || r.Principal() != 100 {
		t.Errorf("clone row = %q (%d), want \"1\" (100)", r.Amount(), r.Principal())
	}
	if c.Date() != date.New(2025, 1, 2) {
		t.Errorf("clone Date() = %v", c.Date())
	}
}

func TestLedgerDateAndReset(t *testing.T) {
	l := NewLedger()
	if l.Date() != date.Today() {
		t.Errorf("NewLedger().Date() = %v, want today", l.Date())
	}
	l.SetDate(date.New(2024, 5, 6))
	l.SetDate(date.Date{})
	if l.Date() != date.Today() {
		t.Errorf("SetDate(zero) gave %v, want today", l.Date())
	}

	l.SetDate(date.New(2024, 5, 6))
	l.Add(in("A", "1", "2"))
	l.Add(in("B", "1", "2"))
	l.Reset()
	assertInputs(t, l, []RowInput{{}})
	if l.Date() != date.Today() {
		t.Errorf("Reset() Date() = %v, want today", l.Date())
	}
}

func TestNewRowCoercesStatus(t *testing.T) {
	r := NewRow(RowInput{Pair: "A", Status: Status(7)})
	if r.Status != Hit {
		t.Errorf("NewRow status = %v, want hit", r.Status)
	}
	if r.Principal() != 0 || r.Fees() != (Fees{}) {
		t.Errorf("empty amount gave principal %d and fees %+v", r.Principal(), r.Fees())
	}
}

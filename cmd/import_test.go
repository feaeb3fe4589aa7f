package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/pnlsheet"
	"github.com/google/subcommands"
)

func withStdin(t *testing.T, text string) {
	t.Helper()
	old := stdin
	stdin = strings.NewReader(text)
	t.Cleanup(func() { stdin = old })
}

func TestImportStdin(t *testing.T) {
	path, out := useLedger(t, sampleDocument)
	withStdin(t, "交易对\t金额\t收益\t状态\nBTC/USDT\t1234.5\t+12.3\t进行中\nETH/USDT\t800\t-4\t未达到\n")

	if status := run(t, &importCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if got := out.String(); got != "Imported 2 rows\n" {
		t.Errorf("import printed %q", got)
	}
	want := []pnlsheet.RowInput{
		{Pair: "BTC/USDT", Amount: "1234.5", Profit: "+12.3", Status: pnlsheet.Progress},
		{Pair: "ETH/USDT", Amount: "800", Profit: "-4", Status: pnlsheet.Miss},
	}
	got := readLedger(t, path).Inputs()
	if len(got) != len(want) {
		t.Fatalf("imported %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i+1, got[i], want[i])
		}
	}
}

func TestImportFile(t *testing.T) {
	path, _ := useLedger(t, "")
	file := filepath.Join(t.TempDir(), "rows.csv")
	if err := os.WriteFile(file, []byte("pair,amount,profit\nBTC,100,1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if status := run(t, &importCmd{}, "-f", file); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if got := readLedger(t, path).Len(); got != 1 {
		t.Errorf("imported %d rows, want 1", got)
	}
}

func TestImportMalformed(t *testing.T) {
	path, _ := useLedger(t, sampleDocument)
	withStdin(t, "BTC 100 1\nETH 200\n")

	if status := run(t, &importCmd{}); status != subcommands.ExitFailure {
		t.Fatalf("Expected ExitFailure, got %v", status)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != sampleDocument {
		t.Errorf("failed import modified the ledger:\n%s", data)
	}
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pnlsheet"
	"github.com/etnz/pnlsheet/store"
	"github.com/google/subcommands"
)

type addCmd struct {
	pair, amount, profit, status string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "appends a row to the ledger" }
func (*addCmd) Usage() string {
	return `pnl add [-pair <pair>] [-amount <amount>] [-profit <profit>] [-status <status>]

  Appends a row. Every field is optional, a row with no amount has no fees.

Usage Examples:
$ pnl add -pair BTC/USDT -amount 1234.5 -profit +12.3 -status progress

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pair, "pair", "", "Trading pair")
	f.StringVar(&c.amount, "amount", "", "Principal amount")
	f.StringVar(&c.profit, "profit", "", "Profit, as free text")
	f.StringVar(&c.status, "status", pnlsheet.Hit.String(), fmt.Sprintf("Status, one of %v", pnlsheet.StatusCodes()))
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status, err := pnlsheet.ParseStatus(c.status)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	i := s.Add(pnlsheet.RowInput{Pair: c.pair, Amount: c.amount, Profit: c.profit, Status: status})
	if ret := CloseStore(ctx, s); ret != subcommands.ExitSuccess {
		return ret
	}
	fmt.Fprintf(stdout, "Added row %d\n", i+1)
	return subcommands.ExitSuccess
}

type setCmd struct{}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "edits a field of a row" }
func (*setCmd) Usage() string {
	return `pnl set <row> <field> <value>

  Sets a field of the row numbered <row> (starting at 1). <field> is one of
  pair, amount, profit or status. Setting the amount recomputes the fees.

Usage Examples:
$ pnl set 2 amount 5000
$ pnl set 2 status miss

`
}

func (*setCmd) SetFlags(f *flag.FlagSet) {}

func (*setCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintf(os.Stderr, "Error: set needs a row, a field and a value\n")
		return subcommands.ExitUsageError
	}
	i, err := rowIndex(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	field, value := f.Arg(1), f.Arg(2)

	var edit func(s *store.LedgerStore) error
	switch field {
	case "pair":
		edit = func(s *store.LedgerStore) error { return s.SetPair(i, value) }
	case "amount":
		edit = func(s *store.LedgerStore) error { return s.SetAmount(i, value) }
	case "profit":
		edit = func(s *store.LedgerStore) error { return s.SetProfit(i, value) }
	case "status":
		status, err := pnlsheet.ParseStatus(value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		edit = func(s *store.LedgerStore) error { return s.SetStatus(i, status) }
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown field %q, want pair, amount, profit or status\n", field)
		return subcommands.ExitUsageError
	}

	s, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := edit(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting %s: %v\n", field, err)
		return subcommands.ExitFailure
	}
	return CloseStore(ctx, s)
}

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "deletes a row" }
func (*rmCmd) Usage() string {
	return `pnl rm <row>

  Deletes the row numbered <row> (starting at 1). The totals no longer
  include its fees.

`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (*rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: rm needs a row number\n")
		return subcommands.ExitUsageError
	}
	i, err := rowIndex(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := s.Delete(i); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting row: %v\n", err)
		return subcommands.ExitFailure
	}
	return CloseStore(ctx, s)
}

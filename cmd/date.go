package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pnlsheet/date"
	"github.com/google/subcommands"
)

type dateCmd struct{}

func (*dateCmd) Name() string     { return "date" }
func (*dateCmd) Synopsis() string { return "prints or sets the trade date" }
func (*dateCmd) Usage() string {
	return `pnl date [YYYY-MM-DD|today]

  Without argument, prints the trade date of the ledger. Otherwise sets it.

`
}

func (*dateCmd) SetFlags(f *flag.FlagSet) {}

func (*dateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: date takes at most one argument\n")
		return subcommands.ExitUsageError
	}
	var d date.Date
	if f.NArg() == 1 && f.Arg(0) != "today" {
		var err error
		if d, err = date.Parse(f.Arg(0)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	s, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if f.NArg() == 0 {
		fmt.Fprintln(stdout, s.Snapshot().Date())
		return CloseStore(ctx, s)
	}
	s.SetDate(d)
	return CloseStore(ctx, s)
}

type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "clears the ledger" }
func (*resetCmd) Usage() string {
	return `pnl reset

  Replaces all the rows with a single empty row, and sets the date to today.

`
}

func (*resetCmd) SetFlags(f *flag.FlagSet) {}

func (*resetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	s.Reset()
	return CloseStore(ctx, s)
}

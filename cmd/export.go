package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/pnlsheet/renderer"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "exports the ledger to csv, png, html or markdown" }
func (*exportCmd) Usage() string {
	return `pnl export [-format csv|png|html|md] [-o <file>]

  Writes a read-only view of the ledger. The default file name depends on the
  format: pnl.csv, pnl_<unix millis>.png, pnl.html or pnl.md. Use -o - to
  write to the standard output.

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", fmt.Sprintf("Export format, one of %v", renderer.Formats()))
	f.StringVar(&c.output, "o", "", "Output file, '-' for the standard output")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := c.output
	if name == "" {
		var err error
		if name, err = renderer.Filename(c.format, time.Now()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	s, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)
	snapshot := s.Snapshot()

	if name == "-" {
		if err := renderer.Export(stdout, c.format, snapshot); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	if err := renderer.Export(out, c.format, snapshot); err != nil {
		out.Close()
		os.Remove(name)
		fmt.Fprintf(os.Stderr, "Error exporting ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Exported %s\n", name)
	return subcommands.ExitSuccess
}

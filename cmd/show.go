package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/pnlsheet/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	raw bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "displays the ledger with its fees and totals" }
func (*showCmd) Usage() string {
	return `pnl show [-raw]

  Displays the ledger as a table: one line per row with the three fee tiers
  computed from the amount, and the fee totals.

`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print the markdown source instead of rendering it")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)
	md := renderer.Markdown(s.Snapshot())
	if c.raw {
		fmt.Fprint(stdout, md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal, falling back to the source.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

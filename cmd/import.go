package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/pnlsheet"
	"github.com/google/subcommands"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replaces all rows with rows pasted from a spreadsheet" }
func (*importCmd) Usage() string {
	return `pnl import [-f <file>]

  Reads rows from <file>, or from the standard input, and replaces all the
  rows of the ledger with them. Each line holds a pair, an amount, a profit and
  an optional status separated by tabs, commas or spaces. A header line is
  skipped.

  If any line has less than 3 columns nothing is imported.

Usage Examples:
$ pbpaste | pnl import

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "File to import, the standard input by default")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = stdin
	if c.file != "" {
		fd, err := os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		defer fd.Close()
		r = fd
	}
	text, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading rows: %v\n", err)
		return subcommands.ExitFailure
	}

	s, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	n, err := s.Import(string(text))
	if err != nil {
		var malformed *pnlsheet.MalformedRowError
		if errors.As(err, &malformed) {
			fmt.Fprintf(os.Stderr, "Error: nothing imported, %v\n", malformed)
		} else {
			fmt.Fprintf(os.Stderr, "Error importing rows: %v\n", err)
		}
		return subcommands.ExitFailure
	}
	if ret := CloseStore(ctx, s); ret != subcommands.ExitSuccess {
		return ret
	}
	fmt.Fprintf(stdout, "Imported %d rows\n", n)
	return subcommands.ExitSuccess
}

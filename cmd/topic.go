package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/pnlsheet/docs"
	"github.com/google/subcommands"
)

// topicCmd prints the user guide, one topic at a time.
type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the pnl user guide" }
func (*topicCmd) Usage() string {
	return `pnl topic [-list] [<topic>...]

  Print the user guide pages about the ledger: how fees are derived from the
  profit, the bulk import format, the status column, where the ledger is stored
  and the export formats. Without a topic the overview is printed, '*' prints
  every page.

`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "list the available topics")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	available, err := docs.GetAllTopics()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.list {
		for _, t := range available {
			fmt.Fprintln(stdout, t)
		}
		return subcommands.ExitSuccess
	}

	names := f.Args()
	if len(names) == 0 {
		names = []string{"readme"}
	}
	page, err := docs.GetTopics(names...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\nAvailable topics: %s\n", err, strings.Join(available, ", "))
		return subcommands.ExitFailure
	}
	printMarkdown(page)
	return subcommands.ExitSuccess
}

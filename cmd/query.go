package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/pnlsheet/store"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluates a JSONPath expression against the ledger document" }
func (*queryCmd) Usage() string {
	return `pnl query <jsonpath>

  Evaluates a JSONPath expression against the stored ledger document and
  prints the result as JSON.

Usage Examples:
$ pnl query '$.date'
$ pnl query '$.rows[?(@.status=="miss")].pair'

`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: query needs a single JSONPath expression\n")
		return subcommands.ExitUsageError
	}
	s, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)
	val, err := query(s, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	out, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}

// query evaluates path against the ledger document as it would be persisted.
func query(s *store.LedgerStore, path string) (any, error) {
	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("cannot encode ledger: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot decode ledger: %w", err)
	}
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return val, nil
}

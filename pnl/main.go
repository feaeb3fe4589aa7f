package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/pnlsheet/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	name := path.Base(os.Args[0])
	// exits when invoked by the shell for completion.
	complete.Complete(name, cmd.Completion())

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogging(os.Stderr)

	status := commander.Execute(context.Background())
	if err := cmd.WriteMetrics(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(int(status))
}

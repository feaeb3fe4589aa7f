// Package cmd implements the CLI application to manage a PnL sheet.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/etnz/pnlsheet/config"
	"github.com/etnz/pnlsheet/store"
	"github.com/google/subcommands"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&showCmd{}, "view")
	c.Register(&exportCmd{}, "view")
	c.Register(&queryCmd{}, "view")
	c.Register(&topicCmd{}, "view")

	c.Register(&addCmd{}, "edit")
	c.Register(&setCmd{}, "edit")
	c.Register(&rmCmd{}, "edit")
	c.Register(&importCmd{}, "edit")
	c.Register(&dateCmd{}, "edit")
	c.Register(&resetCmd{}, "edit")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile  = flag.String("config", "", "YAML configuration file (default "+config.DefaultFile+" when present)")
	storeKind   = flag.String("store", "", "Storage backend: file, redis or memory")
	ledgerFile  = flag.String("file", "", "Ledger document used by the file store")
	redisAddr   = flag.String("redis-addr", "", "Address of the redis store")
	metricsFile = flag.String("metrics-file", "", "Write store metrics to this file on exit")
	verbose     = flag.Bool("v", false, "Verbose logging")
)

// stdout and stdin are variables for tests.
var (
	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// Registry collects the store metrics of this process.
var Registry = prometheus.NewRegistry()

var metrics = store.NewMetrics(Registry)

// Settings resolves the configuration: defaults, config file, environment and global flags.
func Settings() (config.Config, error) {
	c := config.Default()
	path, required := *configFile, true
	if path == "" {
		path, required = config.DefaultFile, false
	}
	if err := c.LoadFile(path, required); err != nil {
		return c, err
	}

	env, err := config.DotEnv(".env")
	if err != nil {
		return c, err
	}
	if err := c.LoadEnv(env); err != nil {
		return c, err
	}

	flags := map[*string]*string{
		storeKind:   &c.Store,
		ledgerFile:  &c.File,
		redisAddr:   &c.RedisAddr,
		metricsFile: &c.MetricsFile,
	}
	for flagValue, dst := range flags {
		if *flagValue != "" {
			*dst = *flagValue
		}
	}
	return c, c.Validate()
}

// SetupLogging configures the global logger to write human readable lines to w.
func SetupLogging(w io.Writer) {
	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}

// WriteMetrics writes the metrics registry to the configured metrics file, if any.
func WriteMetrics() error {
	c, err := Settings()
	if err != nil || c.MetricsFile == "" {
		return err
	}
	if err := prometheus.WriteToTextfile(c.MetricsFile, Registry); err != nil {
		return fmt.Errorf("cannot write metrics to %q: %w", c.MetricsFile, err)
	}
	return nil
}

// OpenStore is the central function to open the ledger store.
func OpenStore(ctx context.Context) (*store.LedgerStore, error) {
	c, err := Settings()
	if err != nil {
		return nil, err
	}
	b, err := c.Backend()
	if err != nil {
		return nil, err
	}
	return store.Open(ctx, b, store.WithDelay(c.Debounce), store.WithMetrics(metrics))
}

// CloseStore saves pending changes, reporting failures on stderr.
func CloseStore(ctx context.Context, s *store.LedgerStore) subcommands.ExitStatus {
	if err := s.Close(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger to %s: %v\n", s, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// rowIndex converts a 1-based row number given on the command line to an index.
func rowIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid row number %q", arg)
	}
	return n - 1, nil
}

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/etnz/pnlsheet"
	"github.com/etnz/pnlsheet/date"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultDelay is the idle time after the last mutation before the ledger is saved.
const DefaultDelay = 500 * time.Millisecond

// LedgerStore owns a ledger and keeps its backend up to date.
//
// Every mutation is applied synchronously, then a save is scheduled after an
// idle delay. A new mutation before the delay expires reschedules it, so that
// bursts of edits are written once. Failed mutations change nothing and
// schedule nothing.
type LedgerStore struct {
	backend Backend
	delay   time.Duration
	log     zerolog.Logger
	metrics *Metrics

	// saving serializes saves, so that the backend always ends up with the
	// latest encoded ledger. It is acquired before mu.
	saving sync.Mutex

	mu      sync.Mutex // guards everything below, the timer fires on its own goroutine.
	ledger  *pnlsheet.Ledger
	timer   *time.Timer
	version uint64 // incremented by every successful mutation
	saved   uint64 // version held by the backend
}

// Option configures a LedgerStore.
type Option func(*LedgerStore)

// WithDelay sets the debounce delay.
func WithDelay(d time.Duration) Option { return func(s *LedgerStore) { s.delay = d } }

// WithLogger sets the logger, the global zerolog logger is used by default.
func WithLogger(l zerolog.Logger) Option { return func(s *LedgerStore) { s.log = l } }

// WithMetrics sets the counters to update.
func WithMetrics(m *Metrics) Option { return func(s *LedgerStore) { s.metrics = m } }

// Open loads the ledger from backend.
//
// An empty backend gives the default ledger. So does a corrupt document: it is
// discarded and reported in the logs only. Errors reading the backend itself
// are returned.
func Open(ctx context.Context, backend Backend, opts ...Option) (*LedgerStore, error) {
	s := &LedgerStore{
		backend: backend,
		delay:   DefaultDelay,
		log:     log.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(nil)
	}

	data, err := backend.Load(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		s.log.Debug().Stringer("backend", s).Msg("no ledger stored yet, starting from an empty one")
	case err != nil:
		return nil, fmt.Errorf("could not load ledger: %w", err)
	}

	l, err := pnlsheet.RestoreLedger(data)
	if err != nil {
		s.metrics.LoadFallbacks.Inc()
		s.log.Warn().Err(err).Stringer("backend", s).Msg("discarding corrupt ledger document")
	}
	s.ledger = l
	return s, nil
}

func (s *LedgerStore) String() string {
	if str, ok := s.backend.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%T", s.backend)
}

// Snapshot returns a detached copy of the ledger.
func (s *LedgerStore) Snapshot() *pnlsheet.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Clone()
}

// Totals returns the footer totals of the current ledger.
func (s *LedgerStore) Totals() pnlsheet.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Totals()
}

// mutate applies f to the ledger and schedules a save if it succeeds.
func (s *LedgerStore) mutate(f func(l *pnlsheet.Ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := f(s.ledger); err != nil {
		return err
	}
	s.version++
	s.schedule()
	return nil
}

// schedule (re)arms the save timer, s.mu must be held.
func (s *LedgerStore) schedule() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		if err := s.save(context.Background()); err != nil {
			s.log.Error().Err(err).Stringer("backend", s).Msg("could not save ledger")
		}
	})
}

// Add appends a row and returns its index.
func (s *LedgerStore) Add(in pnlsheet.RowInput) int {
	var i int
	s.mutate(func(l *pnlsheet.Ledger) error {
		i = l.Add(in)
		return nil
	})
	return i
}

// Delete removes the i-th row.
func (s *LedgerStore) Delete(i int) error {
	return s.mutate(func(l *pnlsheet.Ledger) error { return l.Delete(i) })
}

// SetPair sets the pair of the i-th row.
func (s *LedgerStore) SetPair(i int, pair string) error {
	return s.mutate(func(l *pnlsheet.Ledger) error { return l.SetPair(i, pair) })
}

// SetAmount sets the amount of the i-th row, its fees are recomputed.
func (s *LedgerStore) SetAmount(i int, amount string) error {
	return s.mutate(func(l *pnlsheet.Ledger) error { return l.SetAmount(i, amount) })
}

// SetProfit sets the profit of the i-th row.
func (s *LedgerStore) SetProfit(i int, profit string) error {
	return s.mutate(func(l *pnlsheet.Ledger) error { return l.SetProfit(i, profit) })
}

// SetStatus sets the status of the i-th row.
func (s *LedgerStore) SetStatus(i int, status pnlsheet.Status) error {
	return s.mutate(func(l *pnlsheet.Ledger) error { return l.SetStatus(i, status) })
}

// SetDate sets the trade date.
func (s *LedgerStore) SetDate(d date.Date) {
	s.mutate(func(l *pnlsheet.Ledger) error {
		l.SetDate(d)
		return nil
	})
}

// Reset replaces the ledger content with a single empty row, dated today.
func (s *LedgerStore) Reset() {
	s.mutate(func(l *pnlsheet.Ledger) error {
		l.Reset()
		return nil
	})
}

// Import parses pasted text and replaces all the rows with the result.
//
// It returns the number of rows parsed. On a parse error the ledger is left
// untouched.
func (s *LedgerStore) Import(text string) (int, error) {
	rows, err := pnlsheet.ParseBulk(text)
	if err != nil {
		return 0, err
	}
	s.mutate(func(l *pnlsheet.Ledger) error {
		l.Replace(rows)
		return nil
	})
	s.metrics.ImportedRows.Add(float64(len(rows)))
	s.log.Debug().Int("rows", len(rows)).Msg("bulk import applied")
	return len(rows), nil
}

// Flush cancels any pending save and saves now if there are unsaved changes.
//
// It waits for a save already in progress, so that when it returns the backend
// holds the ledger as it was when Flush was called.
func (s *LedgerStore) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	return s.save(ctx)
}

// Close flushes the store and releases the backend, if it needs to.
func (s *LedgerStore) Close(ctx context.Context) error {
	err := s.Flush(ctx)
	if c, ok := s.backend.(io.Closer); ok {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close %s: %w", s, cerr)
		}
	}
	return err
}

// save writes the ledger if it changed since the last successful save.
func (s *LedgerStore) save(ctx context.Context) error {
	s.saving.Lock()
	defer s.saving.Unlock()

	s.mu.Lock()
	if s.version == s.saved {
		s.mu.Unlock()
		return nil
	}
	var buf bytes.Buffer
	err := pnlsheet.EncodeLedger(&buf, s.ledger)
	version := s.version
	s.mu.Unlock()
	if err != nil {
		s.metrics.SaveErrors.Inc()
		return err
	}

	if err := s.backend.Save(ctx, buf.Bytes()); err != nil {
		s.metrics.SaveErrors.Inc()
		return err
	}
	s.mu.Lock()
	s.saved = version
	s.mu.Unlock()
	s.metrics.Saves.Inc()
	s.log.Debug().Stringer("backend", s).Int("bytes", buf.Len()).Msg("ledger saved")
	return nil
}

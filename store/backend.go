// Package store persists a ledger into a key-value store.
//
// A Backend holds the ledger document under a single key. A LedgerStore owns
// the in-memory ledger, applies mutations to it and writes it back to its
// Backend after a short idle delay, so that a burst of edits results in a
// single write.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Backend that holds no document yet.
var ErrNotFound = errors.New("no ledger document")

// Backend stores a single document.
type Backend interface {
	// Load returns the stored document, or ErrNotFound.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored document.
	Save(ctx context.Context, data []byte) error
}

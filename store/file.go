package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend keeps the document in a single JSON file.
type FileBackend struct {
	Path string
}

// NewFileBackend returns a backend storing the document at path.
func NewFileBackend(path string) *FileBackend { return &FileBackend{Path: path} }

func (b *FileBackend) String() string { return "file:" + b.Path }

// Load reads the file, a missing file is ErrNotFound.
func (b *FileBackend) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not read ledger file %q: %w", b.Path, err)
	}
	return data, nil
}

// Save writes the document next to the file first, then renames it over the
// file so that a reader never sees a partial document.
func (b *FileBackend) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(b.Path)
	// Ensure the directory for the ledger file exists.
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", b.Path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(b.Path)+".*")
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", b.Path, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing ledger file %q: %w", b.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing ledger file %q: %w", b.Path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("error writing ledger file %q: %w", b.Path, err)
	}
	if err := os.Rename(tmp.Name(), b.Path); err != nil {
		return fmt.Errorf("error replacing ledger file %q: %w", b.Path, err)
	}
	return nil
}

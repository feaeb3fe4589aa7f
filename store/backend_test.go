package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-redis/redismock/v8"
)

func TestFileBackend(t *testing.T) {
	ctx := context.Background()
	b := NewFileBackend(filepath.Join(t.TempDir(), "sub", "pnl.json"))

	if _, err := b.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() on missing file: got error %v, want ErrNotFound", err)
	}

	want := `{"date":"2024-03-05","rows":[]}`
	if err := b.Save(ctx, []byte(want)); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := b.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if string(got) != want {
		t.Errorf("Load() = %q, want %q", got, want)
	}

	// no temporary files are left behind.
	entries, err := os.ReadDir(filepath.Dir(b.Path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want 1", len(entries))
	}
}

func TestMemoryBackend(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend("bb_v7")

	if _, err := b.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() on empty backend: got error %v, want ErrNotFound", err)
	}

	data := []byte("doc")
	if err := b.Save(ctx, data); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	data[0] = 'X' // the backend must own its copy.

	got, err := b.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if string(got) != "doc" {
		t.Errorf("Load() = %q, want %q", got, "doc")
	}
}

func TestRedisBackend(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	b := NewRedisBackend(db, "bb_v7")

	mock.ExpectGet("bb_v7").RedisNil()
	if _, err := b.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() on missing key: got error %v, want ErrNotFound", err)
	}

	doc := `{"date":"2024-03-05","rows":[]}`
	mock.ExpectSet("bb_v7", doc, 0).SetVal("OK")
	if err := b.Save(ctx, []byte(doc)); err != nil {
		t.Errorf("Save() failed: %v", err)
	}

	mock.ExpectGet("bb_v7").SetVal(doc)
	got, err := b.Load(ctx)
	if err != nil {
		t.Errorf("Load() failed: %v", err)
	}
	if string(got) != doc {
		t.Errorf("Load() = %q, want %q", got, doc)
	}

	mock.ExpectSet("bb_v7", doc, 0).SetErr(errors.New("connection refused"))
	if err := b.Save(ctx, []byte(doc)); err == nil {
		t.Error("Save() succeeded, want an error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRedisBackendClose(t *testing.T) {
	ctx := context.Background()
	db, _ := redismock.NewClientMock()
	b := NewRedisBackend(db, "bb_v7")

	if err := b.Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}
	if _, err := b.Load(ctx); err == nil {
		t.Error("Load() after Close() should fail")
	}
}

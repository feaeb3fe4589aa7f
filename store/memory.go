package store

import (
	"context"
	"slices"

	"github.com/patrickmn/go-cache"
)

// MemoryBackend keeps the document in process memory. Nothing survives the process.
type MemoryBackend struct {
	c   *cache.Cache
	key string
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend(key string) *MemoryBackend {
	return &MemoryBackend{c: cache.New(cache.NoExpiration, 0), key: key}
}

func (b *MemoryBackend) String() string { return "memory:" + b.key }

func (b *MemoryBackend) Load(_ context.Context) ([]byte, error) {
	v, ok := b.c.Get(b.key)
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(v.([]byte)), nil
}

func (b *MemoryBackend) Save(_ context.Context, data []byte) error {
	b.c.Set(b.key, slices.Clone(data), cache.NoExpiration)
	return nil
}

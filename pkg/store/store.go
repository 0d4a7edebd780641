// Package store implements the persistence port: string-keyed JSON collection
// blobs with seed-on-first-read and replace-whole-collection writes. Backends
// are an embedded badger database (default) and a single-table sqlite
// database; both hold the same opaque blobs.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// KV is the minimal key-value surface a backend must provide.
type KV interface {
	// Read returns the raw value and whether the key exists.
	Read(ctx context.Context, key string) ([]byte, bool, error)
	Write(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// CorruptHook is invoked when a stored blob fails to decode. The collection
// recovers by reseeding its defaults; the hook exists so callers can log the
// event.
type CorruptHook func(key string, err error)

// Collection is a typed view over one stored key. Every mutation serializes
// the entire collection back (last write wins); the mutex makes
// read-modify-write cycles atomic within this process, which is the only
// writer the system supports.
type Collection[T any] struct {
	kv        KV
	key       string
	defaults  []T
	onCorrupt CorruptHook

	mu sync.Mutex
}

// NewCollection binds a typed collection to a storage key. The defaults are
// written on first read of a key with no stored value, and again if the
// stored value turns out to be corrupt.
func NewCollection[T any](kv KV, key string, defaults []T, onCorrupt CorruptHook) *Collection[T] {
	return &Collection[T]{kv: kv, key: key, defaults: defaults, onCorrupt: onCorrupt}
}

// Key returns the storage key the collection is bound to.
func (c *Collection[T]) Key() string {
	return c.key
}

// All returns the stored items, seeding the defaults on first read.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked(ctx)
}

// Replace overwrites the whole collection.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeLocked(ctx, items)
}

// Mutate runs fn over the current items and persists whatever it returns.
// The lock is held across the cycle so count-derived values (like sale
// sequence numbers) cannot race within the process.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.loadLocked(ctx)
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return c.writeLocked(ctx, next)
}

func (c *Collection[T]) loadLocked(ctx context.Context) ([]T, error) {
	raw, ok, err := c.kv.Read(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", c.key, err)
	}
	if !ok {
		if err := c.writeLocked(ctx, c.defaults); err != nil {
			return nil, err
		}
		return copied(c.defaults), nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		// Corrupt blob: recover by reseeding rather than failing the caller.
		if c.onCorrupt != nil {
			c.onCorrupt(c.key, err)
		}
		if err := c.writeLocked(ctx, c.defaults); err != nil {
			return nil, err
		}
		return copied(c.defaults), nil
	}
	return items, nil
}

func (c *Collection[T]) writeLocked(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", c.key, err)
	}
	if err := c.kv.Write(ctx, c.key, raw); err != nil {
		return fmt.Errorf("writing %q: %w", c.key, err)
	}
	return nil
}

func copied[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

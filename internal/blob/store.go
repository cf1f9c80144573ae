// Package blob provides the key-value persistence handle behind the record
// stores. A Store holds one opaque blob per key; stores snapshot whole
// collections into it on every mutation. Three backends are provided: a
// directory of files, an in-memory map, and an embedded SQLite database.
package blob

import "context"

// Store is an abstract blob handle. Get returns common.ErrNotFound when the
// key is absent; callers treat that as an empty collection, never as a
// fatal condition. Put atomically overwrites any previous value. Delete is
// idempotent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Batch is implemented by backends that can apply a group of writes
// atomically. Apply runs fn against a transactional view of the store; when
// fn returns an error none of the writes are kept.
type Batch interface {
	Apply(ctx context.Context, fn func(Store) error) error
}

// Package storage provides abstractions for durable key-value storage.
package storage

import "context"

// Store defines the durable key-value operations the ledger persists through.
// Each roster is saved as one opaque value under its own key, the way a
// browser keeps records in local storage.
// This abstraction allows swapping storage backends (memory, SQLite, Redis)
// without changing the ledger.
type Store interface {
	// Get returns the value stored under key.
	// A missing key is reported as ok == false with a nil error.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

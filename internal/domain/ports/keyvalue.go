package ports

import "context"

// KeyValueStore persists opaque values under fixed keys.
// Each operation is atomic per key; there is no cross-key transaction.
type KeyValueStore interface {
	// Get returns the value stored at key, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the value at key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying connection.
	Close() error
}

// FailureObserver receives failures that are deliberately absorbed so they
// stay diagnosable without changing what callers see.
type FailureObserver interface {
	ObserveFailure(ctx context.Context, op, key string, err error)
}

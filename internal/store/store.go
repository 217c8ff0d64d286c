package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a record with the given ID is not found.
var ErrNotFound = errors.New("record not found")

// ErrEmptyID is returned when trying to store a record with an empty ID.
var ErrEmptyID = errors.New("empty record ID")

// KV is the raw persistence layer: durable key-value storage namespaced by
// collection name ("sales", "notes", "history") under one storage area.
// Implementations never retry; any failure of the medium surfaces to the
// caller as-is.
type KV interface {
	// List returns the raw value of every record in the collection, in
	// unspecified order. Empty collections yield an empty slice, not an error.
	List(ctx context.Context, collection string) ([][]byte, error)
	// Get returns the raw value stored under id, or ErrNotFound.
	Get(ctx context.Context, collection, id string) ([]byte, error)
	// Put writes value under id, overwriting any previous value.
	Put(ctx context.Context, collection, id string, value []byte) error
	// Delete removes the record if present. Deleting an absent id is a no-op.
	Delete(ctx context.Context, collection, id string) error
	// Clear removes every record in the collection.
	Clear(ctx context.Context, collection string) error
}

// Transactional is an optional capability: a KV that can run a function
// atomically against itself. Callers must type-assert and fall back to
// sequential writes when the medium does not support it.
type Transactional interface {
	RunInTransaction(ctx context.Context, fn func(tx KV) error) error
}

// NewID returns a fresh opaque record identifier. IDs are never reused and
// never interpreted by business logic.
func NewID() string {
	return uuid.NewString()
}

package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Record is anything a Collection can persist: it must expose the unique key
// it is stored under.
type Record interface {
	Key() string
}

// Collection is a typed view over one KV namespace. It owns the JSON codec
// and nothing else; records go in and out whole.
type Collection[T Record] struct {
	kv   KV
	name string
}

// NewCollection binds a typed collection to a KV namespace.
func NewCollection[T Record](kv KV, name string) *Collection[T] {
	return &Collection[T]{kv: kv, name: name}
}

// Name returns the KV namespace this collection persists under.
func (c *Collection[T]) Name() string { return c.name }

// WithKV returns the same collection bound to another KV, used to point it at
// a transaction view of the medium.
func (c *Collection[T]) WithKV(kv KV) *Collection[T] {
	return &Collection[T]{kv: kv, name: c.name}
}

// GetAll returns every stored record in unspecified order. Callers sort for
// display.
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	values, err := c.kv.List(ctx, c.name)
	if err != nil {
		return nil, err
	}

	records := make([]T, 0, len(values))
	for _, v := range values {
		var rec T
		if err := json.Unmarshal(v, &rec); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", c.name, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// GetOne looks a record up by id. Returns ErrNotFound if absent.
func (c *Collection[T]) GetOne(ctx context.Context, id string) (T, error) {
	var rec T
	value, err := c.kv.Get(ctx, c.name, id)
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(value, &rec); err != nil {
		return rec, fmt.Errorf("decode %s record %s: %w", c.name, id, err)
	}
	return rec, nil
}

// Insert persists a record under its key. The caller assigns a fresh id via
// NewID before insert.
func (c *Collection[T]) Insert(ctx context.Context, rec T) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", c.name, err)
	}
	return c.kv.Put(ctx, c.name, rec.Key(), value)
}

// Update reads the record under id, applies the merge function to it, and
// persists the result. Returns ErrNotFound (and creates nothing) if id does
// not exist.
func (c *Collection[T]) Update(ctx context.Context, id string, apply func(*T)) (T, error) {
	rec, err := c.GetOne(ctx, id)
	if err != nil {
		return rec, err
	}
	apply(&rec)
	if err := c.Insert(ctx, rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// Delete removes the record. Idempotent: deleting an absent id is a no-op.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.kv.Delete(ctx, c.name, id)
}

// Clear removes every record in the collection.
func (c *Collection[T]) Clear(ctx context.Context) error {
	return c.kv.Clear(ctx, c.name)
}

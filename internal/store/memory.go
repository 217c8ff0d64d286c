package store

import (
	"context"
	"sync"
)

// Memory provides an in-memory KV implementation. It backs the test suite and
// works as a throwaway storage area when no database file is wanted.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
}

// NewMemory instantiates an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{
		collections: map[string]map[string][]byte{},
	}
}

func (m *Memory) List(_ context.Context, collection string) ([][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([][]byte, 0, len(m.collections[collection]))
	for _, v := range m.collections[collection] {
		records = append(records, append([]byte(nil), v...))
	}
	return records, nil
}

func (m *Memory) Get(_ context.Context, collection, id string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put stores value under id. Returns ErrEmptyID if id is empty.
func (m *Memory) Put(_ context.Context, collection, id string, value []byte) error {
	if id == "" {
		return ErrEmptyID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.collections[collection]
	if !ok {
		c = map[string][]byte{}
		m.collections[collection] = c
	}
	c[id] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Delete(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.collections[collection], id)
	return nil
}

func (m *Memory) Clear(_ context.Context, collection string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.collections, collection)
	return nil
}

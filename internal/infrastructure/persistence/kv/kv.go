// Package kv provides local implementations of the profile.Store durable-map
// contract: an in-memory store for tests and a JSON-file store for normal
// single-user use. Server-grade backends live in the sibling redis and
// postgres packages.
package kv

import (
	"context"
	"sync"

	"github.com/coursecompass/compass/internal/domain/profile"
)

// Memory is a map-backed Store. Safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get returns the value for key, or profile.ErrKeyNotFound.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, profile.ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set writes the value for key.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

// Remove deletes the key; absent keys are ignored.
func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

var _ profile.Store = (*Memory)(nil)

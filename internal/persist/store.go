// Package persist defines the persistence gateway contract the engine
// consumes: an opaque get/set/clear of a serialized snapshot. The engine
// never depends on where the blob lives; a missing read means "no saved
// state" and callers fall back to a default aggregate.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// ErrNoSave is returned by Get when no snapshot has been stored.
var ErrNoSave = errors.New("no saved state")

// Store is the gateway contract. Writes are fire-and-forget at call sites:
// errors are logged, never retried.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, value string) error
	// SetObject serializes the value and stores it.
	SetObject(ctx context.Context, value any) error
	// Clear empties the stored value; Remove deletes the slot entirely.
	Clear(ctx context.Context) error
	Remove(ctx context.Context) error
}

// Marshal serializes a snapshot object the way every Store implementation
// stores it.
func Marshal(value any) (string, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("serializing snapshot: %w", err)
	}
	return string(raw), nil
}

// MemoryStore is an in-process Store used by tests and as the fallback when
// no database is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	value string
	set   bool
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.set {
		return "", ErrNoSave
	}
	return m.value, nil
}

func (m *MemoryStore) Set(ctx context.Context, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	m.set = true
	return nil
}

func (m *MemoryStore) SetObject(ctx context.Context, value any) error {
	raw, err := Marshal(value)
	if err != nil {
		return err
	}
	return m.Set(ctx, raw)
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = ""
	m.set = true
	return nil
}

func (m *MemoryStore) Remove(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = ""
	m.set = false
	return nil
}

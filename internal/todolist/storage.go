package todolist

import (
	"context"
	"sync"
)

// Storage persists the ordered item texts of a List.
// Implementations never see the List itself, only its items.
type Storage interface {
	// Load returns the stored items in order.
	Load(ctx context.Context) ([]string, error)

	// Save replaces the stored items.
	Save(ctx context.Context, items []string) error
}

// Memory is a Storage that keeps items in process memory only.
type Memory struct {
	mu    sync.RWMutex
	items []string
}

// NewMemory returns a Memory seeded with items.
func NewMemory(items ...string) *Memory {
	m := &Memory{}
	m.items = append(m.items, items...)
	return m
}

// Load implements Storage.
func (m *Memory) Load(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.items))
	copy(out, m.items)
	return out, nil
}

// Save implements Storage.
func (m *Memory) Save(ctx context.Context, items []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items[:0:0], items...)
	return nil
}

// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
)

// FakeStorage is an in-memory todolist.Storage that records calls
// and can be told to fail.
type FakeStorage struct {
	mu    sync.RWMutex
	items []string

	LoadCalls int
	SaveCalls int

	// Error injection for testing
	LoadErr error
	SaveErr error
}

// NewFakeStorage creates a FakeStorage holding items.
func NewFakeStorage(items ...string) *FakeStorage {
	f := &FakeStorage{}
	f.items = append(f.items, items...)
	return f
}

// Items returns the last saved (or seeded) items.
func (f *FakeStorage) Items() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, len(f.items))
	copy(out, f.items)
	return out
}

// Load implements todolist.Storage.
func (f *FakeStorage) Load(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoadCalls++
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	out := make([]string, len(f.items))
	copy(out, f.items)
	return out, nil
}

// Save implements todolist.Storage.
func (f *FakeStorage) Save(ctx context.Context, items []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SaveCalls++
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.items = append([]string(nil), items...)
	return nil
}

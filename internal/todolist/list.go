// Package todolist holds the ordered in-memory todo list and its lookup rules.
package todolist

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NotFound is returned by Find when no item matches.
const NotFound = -1

var (
	// ErrNotFound indicates a reference did not resolve to an item.
	ErrNotFound = errors.New("no such item")

	// ErrOutOfRange indicates a direct index outside [0, Len).
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidPosition indicates a move target outside [0, Len].
	ErrInvalidPosition = errors.New("invalid position")
)

// List is an ordered sequence of todo items bound to a Storage.
type List struct {
	items   []string
	storage Storage
}

// New returns an empty list bound to storage.
// A nil storage behaves like Memory.
func New(storage Storage) *List {
	if storage == nil {
		storage = NewMemory()
	}
	return &List{storage: storage}
}

// Open creates a list and loads it from storage.
func Open(ctx context.Context, storage Storage) (*List, error) {
	l := New(storage)
	if err := l.Load(ctx); err != nil {
		return nil, err
	}
	return l, nil
}

// Load replaces the current items with the storage contents.
// Entries that are blank after trimming are dropped; others are kept verbatim.
func (l *List) Load(ctx context.Context) error {
	raw, err := l.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	items := make([]string, 0, len(raw))
	for _, item := range raw {
		if strings.TrimSpace(item) == "" {
			continue
		}
		items = append(items, item)
	}
	l.items = items
	return nil
}

// Save writes the current items to storage.
func (l *List) Save(ctx context.Context) error {
	if err := l.storage.Save(ctx, l.Items()); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Items returns a copy of the items in order.
func (l *List) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// Add appends text (trimmed) and returns its index.
func (l *List) Add(text string) int {
	l.items = append(l.items, strings.TrimSpace(text))
	return len(l.items) - 1
}

// Get returns the item at index.
func (l *List) Get(index int) (string, error) {
	if index < 0 || index >= len(l.items) {
		return "", fmt.Errorf("%w: %d (have %d)", ErrOutOfRange, index, len(l.items))
	}
	return l.items[index], nil
}

// Find resolves query to an index, or NotFound.
//
// A query made only of digits is a zero-based index. Anything else is a
// case-insensitive substring match against the items in order; the lowest
// matching index wins.
func (l *List) Find(query string) int {
	if IsAllDigits(query) {
		n, err := strconv.Atoi(query)
		if err != nil || n >= len(l.items) {
			return NotFound
		}
		return n
	}
	q := strings.ToLower(query)
	for i, item := range l.items {
		if strings.Contains(strings.ToLower(item), q) {
			return i
		}
	}
	return NotFound
}

// Resolve turns ref into an index within [0, Len).
func (l *List) Resolve(ref Ref) (int, error) {
	k := NotFound
	if idx, ok := ref.Index(); ok {
		if idx >= 0 && idx < len(l.items) {
			k = idx
		}
	} else {
		k = l.Find(ref.Text())
	}
	if k == NotFound {
		return NotFound, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	return k, nil
}

// Complete removes the item ref points at and returns its text.
// The list is left untouched when ref does not resolve.
func (l *List) Complete(ref Ref) (string, error) {
	k, err := l.Resolve(ref)
	if err != nil {
		return "", err
	}
	return l.removeAt(k), nil
}

// Move relocates the item ref points at to position to.
//
// to is measured against the list before removal and must lie in [0, Len].
// Targets past the end of the shortened list append.
func (l *List) Move(ref Ref, to int) (string, error) {
	if to < 0 || to > len(l.items) {
		return "", fmt.Errorf("%w: %d (have %d)", ErrInvalidPosition, to, len(l.items))
	}
	k, err := l.Resolve(ref)
	if err != nil {
		return "", err
	}
	item := l.removeAt(k)
	if to > len(l.items) {
		to = len(l.items)
	}
	l.items = append(l.items, "")
	copy(l.items[to+1:], l.items[to:])
	l.items[to] = item
	return item, nil
}

// ListAll returns the items joined by newlines.
func (l *List) ListAll() string {
	return strings.Join(l.items, "\n")
}

func (l *List) removeAt(k int) string {
	item := l.items[k]
	l.items = append(l.items[:k], l.items[k+1:]...)
	return item
}

// IsAllDigits reports whether s is non-empty and only ASCII digits.
func IsAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

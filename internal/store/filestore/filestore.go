// Package filestore persists a todo list as a newline-delimited text file.
//
// One item per line, no header, no escaping. The file is rewritten in full
// on every save; there is no locking and no atomic rename.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Store implements todolist.Storage on a single file.
type Store struct {
	path   string
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for debug events.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns a Store backed by path.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the items from the file, creating an empty file first if it
// does not exist. Lines that are blank after trimming are skipped.
func (s *Store) Load(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(s.path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", s.path, err)
		}
		s.logger.Debug("creating todo file", "path", s.path)
		if err := s.Save(ctx, nil); err != nil {
			return nil, err
		}
	}

	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var items []string
	for _, line := range strings.Split(string(b), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	s.logger.Debug("loaded todo file", "path", s.path, "items", len(items))
	return items, nil
}

// Save overwrites the file with items joined by newlines.
// No trailing newline is written.
func (s *Store) Save(ctx context.Context, items []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	data := strings.Join(items, "\n")
	if err := os.WriteFile(s.path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	s.logger.Debug("saved todo file", "path", s.path, "items", len(items))
	return nil
}

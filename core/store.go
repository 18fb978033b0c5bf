package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a whole-document JSON store. Every operation is a full
// load-mutate-save cycle serialized by a per-store mutex, so two writers to
// the same store can never lose each other's update.
type Store[T any] struct {
	mu   sync.Mutex
	path string
	seed func() T
}

func NewStore[T any](path string, seed func() T) *Store[T] {
	return &Store[T]{path: path, seed: seed}
}

func (s *Store[T]) Path() string {
	return s.path
}

// Load returns the current document. A missing file yields the seeded
// default without creating it; a file that exists but cannot be decoded is a
// hard persistence failure, never silently replaced.
func (s *Store[T]) Load() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store[T]) Save(doc T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

// Transact runs fn against the loaded document and persists the result,
// holding the store lock for the whole cycle. If fn returns an error the
// document is not written.
func (s *Store[T]) Transact(fn func(*T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *Store[T]) load() (T, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s.seed(), nil
		}
		var zero T
		return zero, fmt.Errorf("%w: read %s: %v", ErrPersistence, s.path, err)
	}

	var doc T
	if err := json.Unmarshal(raw, &doc); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: decode %s: %v", ErrPersistence, s.path, err)
	}
	return doc, nil
}

// save encodes the document to a sibling temp file and renames it over the
// target, so a crash mid-write never leaves a truncated store behind.
func (s *Store[T]) save(doc T) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrPersistence, s.path, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %v", ErrPersistence, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp")
	if err != nil {
		return fmt.Errorf("%w: temp file for %s: %v", ErrPersistence, s.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %v", ErrPersistence, s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrPersistence, s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", ErrPersistence, s.path, err)
	}
	return nil
}

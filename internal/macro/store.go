package macro

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound indicates no macro exists under the requested name.
var ErrNotFound = errors.New("macro: not found")

// Store holds the macro list in memory and persists it as a JSON array.
// Safe for concurrent use. Insertion order is preserved; adding a macro
// under an existing name replaces it in place.
type Store struct {
	mu     sync.Mutex
	path   string
	macros []Macro
}

// NewStore creates a store persisting to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load replaces the in-memory list with the persisted one. A missing
// file loads an empty list and is not an error.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("macro: read %s: %w", s.path, err)
	}

	var macros []Macro
	if err := json.Unmarshal(data, &macros); err != nil {
		return fmt.Errorf("macro: parse %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.macros = macros
	s.mu.Unlock()
	return nil
}

// Save writes the in-memory list to disk atomically using a temp file
// and rename.
func (s *Store) Save() error {
	s.mu.Lock()
	data, err := json.MarshalIndent(s.macros, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("macro: marshal: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("macro: create directory: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("macro: write temp file: %w", err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("macro: rename temp file: %w", err)
	}
	return nil
}

// Add inserts m, replacing any macro with the same name in place.
func (s *Store) Add(m Macro) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.macros {
		if existing.Name == m.Name {
			s.macros[i] = m
			return
		}
	}
	s.macros = append(s.macros, m)
}

// Get returns the macro named name.
func (s *Store) Get(name string) (Macro, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.macros {
		if m.Name == name {
			return m, nil
		}
	}
	return Macro{}, ErrNotFound
}

// Remove deletes the macro named name.
func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.macros {
		if m.Name == name {
			s.macros = append(s.macros[:i], s.macros[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// List returns a copy of the macro list in insertion order.
func (s *Store) List() []Macro {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]Macro, len(s.macros))
	copy(result, s.macros)
	return result
}

package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/fixtura/pkg/domain"
)

// Store implements ports.SchemaStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Schema
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Schema),
	}
}

// Save stores a deep copy of the schema.
func (s *Store) Save(ctx context.Context, name string, schema domain.Schema) error {
	copied := schema.Clone()
	if copied == nil {
		copied = domain.Schema{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = copied
	return nil
}

// Load retrieves the schema from memory.
func (s *Store) Load(ctx context.Context, name string) (domain.Schema, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	schema, ok := s.data[name]
	if !ok {
		return nil, domain.ErrSchemaNotFound
	}

	// Copy on read so callers can't mutate the stored schema through pointers.
	return schema.Clone(), nil
}

// Delete removes the schema.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns stored schema names, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

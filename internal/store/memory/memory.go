// Package memory implements the dictionary store as an insertion-ordered
// in-process map. This is the default backend.
package memory

import (
	"context"
	"fmt"
	"sync"

	"lexitag/internal/models"
	"lexitag/internal/store"
)

// Store keeps categories in a name index plus an order slice so iteration
// follows insertion order. Overwriting an existing name keeps its position.
type Store struct {
	mu     sync.RWMutex
	byName map[string][]string
	order  []string
}

func New() *Store {
	return &Store{byName: make(map[string][]string)}
}

func (s *Store) AddCategory(ctx context.Context, name string, keywords []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[name]; !exists {
		s.order = append(s.order, name)
	}
	s.byName[name] = cloneKeywords(keywords)
	return nil
}

// UpdateCategory behaves like AddCategory: an absent name is created.
func (s *Store) UpdateCategory(ctx context.Context, name string, keywords []string) error {
	return s.AddCategory(ctx, name, keywords)
}

func (s *Store) DeleteCategory(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[name]; !exists {
		return nil
	}
	delete(s.byName, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) GetCategory(ctx context.Context, name string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keywords, exists := s.byName[name]
	if !exists {
		return nil, fmt.Errorf("get category %q: %w", name, store.ErrNotFound)
	}
	return &models.Category{Name: name, Keywords: cloneKeywords(keywords)}, nil
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, 0, len(s.order))
	for _, name := range s.order {
		categories = append(categories, models.Category{
			Name:     name,
			Keywords: cloneKeywords(s.byName[name]),
		})
	}
	return categories, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order), nil
}

func (s *Store) Close() error {
	return nil
}

func cloneKeywords(keywords []string) []string {
	out := make([]string, len(keywords))
	copy(out, keywords)
	return out
}

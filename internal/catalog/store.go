package catalog

import (
	"context"
	"sync"
)

type Store interface {
	// List returns all books in catalog order.
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id string) (Book, bool, error)
	Featured(ctx context.Context) ([]Book, error)

	// Admin surface. A missing id is reported via the bool, never an error.
	SetFeatured(ctx context.Context, id string, featured bool) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)

	Ping(ctx context.Context) error
}

// MemStore holds the seed catalog. Books live in a slice so listing and
// filtering preserve seed order; the map is only an id index into it.
type MemStore struct {
	mu    sync.RWMutex
	books []Book
	byID  map[string]int
}

func NewMemStore() *MemStore {
	s := &MemStore{books: seedBooks()}
	s.reindex()
	return s
}

func NewStore() Store {
	return NewMemStore()
}

func (s *MemStore) reindex() {
	s.byID = make(map[string]int, len(s.books))
	for i, b := range s.books {
		s.byID[b.ID] = i
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) List(ctx context.Context) ([]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out, nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Book, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return Book{}, false, nil
	}
	return s.books[i], true, nil
}

func (s *MemStore) Featured(ctx context.Context) ([]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Book
	for _, b := range s.books {
		if b.Featured {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MemStore) SetFeatured(ctx context.Context, id string, featured bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return false, nil
	}
	s.books[i].Featured = featured
	return true, nil
}

func (s *MemStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return false, nil
	}
	s.books = append(s.books[:i], s.books[i+1:]...)
	s.reindex()
	return true, nil
}

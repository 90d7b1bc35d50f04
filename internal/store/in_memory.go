package store

import (
	"context"
	"sync"

	"github.com/abgdnv/gocatalog/internal/errors"
)

// inMemory implements ProductStore using an ordered in-memory slice.
// The mutex makes each operation atomic under concurrent handler execution;
// Update and DeleteByID hold the write lock across their read-modify-write.
type inMemory struct {
	mu       sync.RWMutex
	products []Product
}

// NewInMemoryStore creates a new instance of ProductStore. The collection
// starts empty and lives only for the process lifetime.
func NewInMemoryStore() ProductStore {
	return &inMemory{
		products: make([]Product, 0),
	}
}

// FindAll retrieves all products in insertion order.
func (s *inMemory) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p.Clone())
	}
	return list, nil
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(_ context.Context, id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID() == id {
			return p.Clone(), nil
		}
	}
	return nil, errors.ErrProductNotFound
}

// Create appends a new product and returns it.
func (s *inMemory) Create(_ context.Context, product Product) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, product.Clone())
	return product.Clone(), nil
}

// Update shallow-merges fields over the stored product under a single write lock.
func (s *inMemory) Update(_ context.Context, id string, fields Product) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID() != id {
			continue
		}
		merged := p.Clone()
		for k, v := range fields {
			merged[k] = v
		}
		// The stored id wins over a client-supplied one.
		merged["id"] = id
		s.products[i] = merged
		return merged.Clone(), nil
	}
	return nil, errors.ErrProductNotFound
}

// DeleteByID excises a product by its ID, keeping the order of the rest.
func (s *inMemory) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID() == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return errors.ErrProductNotFound
}

// Replace swaps the whole collection.
func (s *inMemory) Replace(_ context.Context, products []Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]Product, 0, len(products))
	for _, p := range products {
		list = append(list, p.Clone())
	}
	s.products = list
	return nil
}

// Package service provides the implementation of catalog business logic.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/abgdnv/gocatalog/internal/store"
	"github.com/google/uuid"
)

// CatalogService defines the methods for managing the product catalog.
// It abstracts the underlying business logic and data access.
type CatalogService interface {
	// List returns one page of products, optionally filtered by exact category
	// match. page is 1-indexed and both page and limit must be >= 1; the REST
	// layer substitutes defaults before calling. Total counts the filtered set
	// before paging.
	List(ctx context.Context, category string, page, limit int) (*ProductPage, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (store.Product, error)

	// Create validates the payload, assigns a fresh id and appends the record.
	// A client-supplied id is discarded.
	Create(ctx context.Context, payload store.Product) (store.Product, error)

	// Update validates the payload and shallow-merges it over the stored
	// record, keeping the existing id.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id string, payload store.Product) (store.Product, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id string) error

	// Search returns all products whose name contains q, case-insensitively.
	Search(ctx context.Context, q string) ([]store.Product, error)

	// Stats counts products grouped by category. Categories with no products
	// are absent from the result.
	Stats(ctx context.Context) (map[string]int, error)
}

// ProductPage is one page of the (possibly filtered) catalog.
type ProductPage struct {
	Products   []store.Product `json:"products"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}

// Service implements CatalogService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of CatalogService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// List returns one page of products, optionally filtered by category.
func (s *Service) List(ctx context.Context, category string, page, limit int) (*ProductPage, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	filtered := products
	if category != "" {
		filtered = make([]store.Product, 0, len(products))
		for _, p := range products {
			if p.Category() == category {
				filtered = append(filtered, p)
			}
		}
	}

	total := len(filtered)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &ProductPage{
		Products:   filtered[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// FindByID retrieves a product by its ID.
func (s *Service) FindByID(ctx context.Context, id string) (store.Product, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}
	return product, nil
}

// Create validates the payload, generates a unique id and stores the record.
func (s *Service) Create(ctx context.Context, payload store.Product) (store.Product, error) {
	if err := ValidateProduct(payload); err != nil {
		return nil, err
	}

	product := payload.Clone()
	product["id"] = uuid.NewString()

	created, err := s.repository.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return created, nil
}

// Update validates the payload and merges it over the stored record.
func (s *Service) Update(ctx context.Context, id string, payload store.Product) (store.Product, error) {
	if err := ValidateProduct(payload); err != nil {
		return nil, err
	}

	updated, err := s.repository.Update(ctx, id, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %s: %w", id, err)
	}
	return updated, nil
}

// DeleteByID deletes a product by its ID.
func (s *Service) DeleteByID(ctx context.Context, id string) error {
	return s.repository.DeleteByID(ctx, id)
}

// Search returns all products whose name contains q, case-insensitively.
func (s *Service) Search(ctx context.Context, q string) ([]store.Product, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	needle := strings.ToLower(q)
	results := make([]store.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name()), needle) {
			results = append(results, p)
		}
	}
	return results, nil
}

// Stats counts products grouped by category.
func (s *Service) Stats(ctx context.Context) (map[string]int, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	stats := make(map[string]int)
	for _, p := range products {
		stats[p.Category()]++
	}
	return stats, nil
}

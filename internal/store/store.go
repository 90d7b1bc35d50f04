// Package store provides an interface for product storage operations.
package store

import "context"

// Product is an open record: the five required catalog fields plus any
// caller-supplied fields stored verbatim. Values are whatever encoding/json
// produced when decoding the request body.
type Product map[string]any

// ID returns the product id, or "" when unset.
func (p Product) ID() string {
	id, _ := p["id"].(string)
	return id
}

// Name returns the product name, or "" when unset or not a string.
func (p Product) Name() string {
	name, _ := p["name"].(string)
	return name
}

// Category returns the product category, or "" when unset or not a string.
func (p Product) Category() string {
	category, _ := p["category"].(string)
	return category
}

// Clone returns a shallow copy of the product.
func (p Product) Clone() Product {
	clone := make(Product, len(p))
	for k, v := range p {
		clone[k] = v
	}
	return clone
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations.
// Implementations keep insertion order; it defines default list ordering.
type ProductStore interface {
	// FindAll returns all products in insertion order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (Product, error)

	// Create appends a new product to the collection.
	Create(ctx context.Context, product Product) (Product, error)

	// Update shallow-merges fields over the stored product. The stored id is
	// kept even if fields carries one.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id string, fields Product) (Product, error)

	// DeleteByID removes a product by its ID, preserving the order of the rest.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id string) error

	// Replace swaps the whole collection. Used for seeding and test reset.
	Replace(ctx context.Context, products []Product) error
}

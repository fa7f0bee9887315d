package service

import (
	"context"

	"product-catalog/internal/model"
)

// ListFilter narrows a product listing. At most one criterion is applied;
// name takes precedence over category, category over availability.
type ListFilter struct {
	Name      *string
	Category  *model.Category
	Available *bool
}

// ProductService defines operations for product catalogue management.
type ProductService interface {
	// Create persists a new product and returns it with its assigned id.
	Create(ctx context.Context, product *model.Product) (*model.Product, error)

	// Get retrieves a single product by id. Returns a NotFoundError when the
	// product does not exist.
	Get(ctx context.Context, id int64) (*model.Product, error)

	// Update replaces all mutable fields of an existing product. Returns a
	// NotFoundError when the product does not exist.
	Update(ctx context.Context, product *model.Product) (*model.Product, error)

	// Delete removes a product by id. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int64) error

	// List retrieves products, optionally narrowed by a single filter.
	List(ctx context.Context, filter ListFilter) ([]model.Product, error)
}

package repository

import (
	"context"

	"product-catalog/internal/model"
)

// ProductRepository defines the interface for product data access operations.
// Every operation is a single statement against the backing store; atomicity
// is delegated to the database.
type ProductRepository interface {
	// Create inserts a new product and returns it with its assigned id.
	Create(ctx context.Context, product *model.Product) (*model.Product, error)

	// Update replaces all mutable fields of the product identified by its id.
	// Returns a NotFoundError when no such row exists.
	Update(ctx context.Context, product *model.Product) (*model.Product, error)

	// Delete removes the product with the given id. Deleting an absent id is
	// not an error.
	Delete(ctx context.Context, id int64) error

	// GetByID retrieves a single product by its id. Absence is a normal
	// outcome signalled by a nil product and nil error.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// GetAll retrieves every product. Order is unspecified.
	GetAll(ctx context.Context) ([]model.Product, error)

	// FindByName retrieves all products with an exact name match.
	FindByName(ctx context.Context, name string) ([]model.Product, error)

	// FindByCategory retrieves all products in the given category.
	FindByCategory(ctx context.Context, category model.Category) ([]model.Product, error)

	// FindByAvailability retrieves all products whose available flag equals
	// the given value.
	FindByAvailability(ctx context.Context, available bool) ([]model.Product, error)
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"product-catalog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

const productColumns = "id, name, description, price::text, available, category"

// Create inserts a new product and returns it with its assigned id.
func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	query := `
		INSERT INTO products (name, description, price, available, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.Available,
		product.Category.String(),
	).Scan(&product.ID)
	if err != nil {
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().Int64("product_id", product.ID).Msg("product created")
	return product, nil
}

// Update replaces all mutable fields of the product identified by its id.
func (r *productRepository) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, available = $4, category = $5
		WHERE id = $6
	`

	tag, err := r.pool.Exec(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.Available,
		product.Category.String(),
		product.ID,
	)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", product.ID).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Int64("product_id", product.ID).Msg("product not found for update")
		return nil, model.NewNotFoundError(product.ID)
	}

	return product, nil
}

// Delete removes the product with the given id. Deleting an absent id is
// not an error.
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	r.logger.Debug().
		Int64("product_id", id).
		Int64("rows_affected", tag.RowsAffected()).
		Msg("product deleted")

	return nil
}

// GetByID retrieves a single product by its id. Returns nil, nil when the
// product does not exist.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	product, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return product, nil
}

// GetAll retrieves every product.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products`, productColumns)
	return r.queryProducts(ctx, query)
}

// FindByName retrieves all products with an exact name match.
func (r *productRepository) FindByName(ctx context.Context, name string) ([]model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE name = $1`, productColumns)
	return r.queryProducts(ctx, query, name)
}

// FindByCategory retrieves all products in the given category.
func (r *productRepository) FindByCategory(ctx context.Context, category model.Category) ([]model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE category = $1`, productColumns)
	return r.queryProducts(ctx, query, category.String())
}

// FindByAvailability retrieves all products whose available flag equals the
// given value.
func (r *productRepository) FindByAvailability(ctx context.Context, available bool) ([]model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE available = $1`, productColumns)
	return r.queryProducts(ctx, query, available)
}

// queryProducts runs a query returning product rows and scans them all.
func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// scanProduct scans a single product row, converting the stored price and
// category name into their domain types.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		p            model.Product
		priceText    string
		categoryName string
	)

	err := row.Scan(&p.ID, &p.Name, &p.Description, &priceText, &p.Available, &categoryName)
	if err != nil {
		return nil, err
	}

	p.Price, err = decimal.NewFromString(priceText)
	if err != nil {
		return nil, fmt.Errorf("invalid stored price %q: %w", priceText, err)
	}

	category, err := model.ParseCategory(categoryName)
	if err != nil {
		return nil, fmt.Errorf("invalid stored category %q: %w", categoryName, err)
	}
	p.Category = category

	return &p, nil
}

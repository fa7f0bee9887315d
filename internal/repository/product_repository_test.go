package repository

import (
	"context"
	"testing"
	"time"

	"product-catalog/internal/database"
	"product-catalog/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer and returns a connection pool.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.EnsureSchema(ctx, pool))

	t.Cleanup(func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	})

	return pool
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func seedProduct(t *testing.T, repo ProductRepository, name, price string, available bool, category model.Category) *model.Product {
	t.Helper()

	created, err := repo.Create(context.Background(), &model.Product{
		Name:        name,
		Description: name + " description",
		Price:       mustDecimal(t, price),
		Available:   available,
		Category:    category,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	return created
}

func TestProductRepository_CreateAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool := setupTestDB(t)
	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	created := seedProduct(t, repo, "Hat", "12.50", true, model.CategoryUnisex)

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Hat", found.Name)
	assert.Equal(t, "Hat description", found.Description)
	assert.True(t, found.Price.Equal(mustDecimal(t, "12.50")))
	assert.True(t, found.Available)
	assert.Equal(t, model.CategoryUnisex, found.Category)
}

func TestProductRepository_GetByID_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool := setupTestDB(t)
	repo := NewProductRepository(pool, zerolog.Nop())

	found, err := repo.GetByID(context.Background(), 999999)
	require.NoError(t, err, "absence is a normal outcome, not an error")
	assert.Nil(t, found)
}

func TestProductRepository_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool := setupTestDB(t)
	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	created := seedProduct(t, repo, "Hat", "12.50", true, model.CategoryUnisex)

	created.Name = "Sun Hat"
	created.Price = mustDecimal(t, "15.00")
	created.Available = false
	created.Category = model.CategoryMale

	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, updated.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Sun Hat", found.Name)
	assert.True(t, found.Price.Equal(mustDecimal(t, "15.00")))
	assert.False(t, found.Available)
	assert.Equal(t, model.CategoryMale, found.Category)
}

func TestProductRepository_Update_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool := setupTestDB(t)
	repo := NewProductRepository(pool, zerolog.Nop())

	_, err := repo.Update(context.Background(), &model.Product{
		ID:        999999,
		Name:      "Ghost",
		Price:     mustDecimal(t, "1.00"),
		Available: true,
		Category:  model.CategoryUnknown,
	})

	var notFound *model.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(999999), notFound.ID)
}

func TestProductRepository_Delete_Idempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool := setupTestDB(t)
	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	created := seedProduct(t, repo, "Hat", "12.50", true, model.CategoryUnisex)

	require.NoError(t, repo.Delete(ctx, created.ID))

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	// Deleting again must succeed
	require.NoError(t, repo.Delete(ctx, created.ID))
}

func TestProductRepository_Finders(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool := setupTestDB(t)
	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	seedProduct(t, repo, "Hat", "12.50", true, model.CategoryUnisex)
	seedProduct(t, repo, "Hat", "9.99", false, model.CategoryFemale)
	seedProduct(t, repo, "Wrench", "25.00", true, model.CategoryTools)

	t.Run("GetAll", func(t *testing.T) {
		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("FindByName is exact and case-sensitive", func(t *testing.T) {
		byName, err := repo.FindByName(ctx, "Hat")
		require.NoError(t, err)
		assert.Len(t, byName, 2)
		for _, p := range byName {
			assert.Equal(t, "Hat", p.Name)
		}

		lower, err := repo.FindByName(ctx, "hat")
		require.NoError(t, err)
		assert.Empty(t, lower)
	})

	t.Run("FindByCategory", func(t *testing.T) {
		tools, err := repo.FindByCategory(ctx, model.CategoryTools)
		require.NoError(t, err)
		require.Len(t, tools, 1)
		assert.Equal(t, "Wrench", tools[0].Name)
	})

	t.Run("FindByAvailability", func(t *testing.T) {
		unavailable, err := repo.FindByAvailability(ctx, false)
		require.NoError(t, err)
		require.Len(t, unavailable, 1)
		assert.False(t, unavailable[0].Available)
	})

	t.Run("No match returns empty slice", func(t *testing.T) {
		none, err := repo.FindByCategory(ctx, model.CategoryAutomotive)
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})
}

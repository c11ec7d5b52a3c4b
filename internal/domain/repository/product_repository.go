package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

var (
	// ErrProductNotFound is returned when no product has the requested catalog id.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductIDTaken is returned by Create when another product already holds the catalog id.
	ErrProductIDTaken = errors.New("product catalog id already exists")
)

// ProductRepository defines catalog persistence.
type ProductRepository interface {
	// MaxCatalogID returns the highest catalog id in use. found is false for an empty catalog.
	MaxCatalogID(ctx context.Context) (maxID int, found bool, err error)

	// Create inserts the product with its assigned catalog id.
	Create(ctx context.Context, product *entity.Product) error

	// FindByCatalogID retrieves one product.
	FindByCatalogID(ctx context.Context, catalogID int) (*entity.Product, error)

	// DeleteByCatalogID removes the product and returns what was removed.
	DeleteByCatalogID(ctx context.Context, catalogID int) (*entity.Product, error)

	// List returns every product ordered by catalog id.
	List(ctx context.Context) ([]*entity.Product, error)

	// ListByCategory returns at most limit products of the category ordered by catalog id. limit <= 0 means no limit.
	ListByCategory(ctx context.Context, category string, limit int) ([]*entity.Product, error)
}

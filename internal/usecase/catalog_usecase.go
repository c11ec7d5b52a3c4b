package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddProductInput defines a new catalog entry. The catalog id is assigned by the service.
type AddProductInput struct {
	Name     string
	Image    string
	Category string
	NewPrice float64
	OldPrice float64
}

// CatalogUsecase manages the product catalog.
type CatalogUsecase interface {
	AddProduct(ctx context.Context, input *AddProductInput) (*entity.Product, error)
	RemoveProduct(ctx context.Context, catalogID int) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	NewCollection(ctx context.Context) ([]*entity.Product, error)
	PopularInWomen(ctx context.Context) ([]*entity.Product, error)
	ProductQRCode(ctx context.Context, catalogID int) ([]byte, error)
}

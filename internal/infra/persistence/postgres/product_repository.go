package postgres

import (
	"context"
	"database/sql"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for the products table repository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) MaxCatalogID(ctx context.Context) (int, bool, error) {
	var maxID sql.NullInt64
	row := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Select("MAX(catalog_id)").Row()
	if err := row.Scan(&maxID); err != nil {
		return 0, false, domainerrors.NewDatabaseExecuteError(err, "failed to read max catalog id")
	}

	return int(maxID.Int64), maxID.Valid, nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrProductIDTaken, "catalog id %d", product.CatalogID)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt

	return nil
}

func (repo *productRepository) FindByCatalogID(ctx context.Context, catalogID int) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("catalog_id = ?", catalogID).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// DeleteByCatalogID uses DELETE ... RETURNING so the removed row is reported without a second query.
func (repo *productRepository) DeleteByCatalogID(ctx context.Context, catalogID int) (*entity.Product, error) {
	var deleted []model.ProductModel
	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("catalog_id = ?", catalogID).
		Delete(&deleted)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 || len(deleted) == 0 {
		return nil, repository.ErrProductNotFound
	}

	return toProductDomain(&deleted[0]), nil
}

func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var products []model.ProductModel
	if err := repo.db.WithContext(ctx).Order("catalog_id ASC").Find(&products).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	return toProductsDomain(products), nil
}

func (repo *productRepository) ListByCategory(ctx context.Context, category string, limit int) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Where("category = ?", category).Order("catalog_id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var products []model.ProductModel
	if err := query.Find(&products).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products by category")
	}

	return toProductsDomain(products), nil
}

func toProductsDomain(products []model.ProductModel) []*entity.Product {
	out := make([]*entity.Product, 0, len(products))
	for i := range products {
		out = append(out, toProductDomain(&products[i]))
	}

	return out
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		CatalogID: data.CatalogID,
		Name:      data.Name,
		Image:     data.Image,
		Category:  data.Category,
		NewPrice:  data.NewPrice,
		OldPrice:  data.OldPrice,
		Available: data.Available,
		CreatedAt: data.CreatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		CatalogID: data.CatalogID,
		Name:      data.Name,
		Image:     data.Image,
		Category:  data.Category,
		NewPrice:  data.NewPrice,
		OldPrice:  data.OldPrice,
		Available: data.Available,
		CreatedAt: data.CreatedAt,
	}
}

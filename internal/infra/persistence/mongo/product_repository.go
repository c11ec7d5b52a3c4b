package mongo

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type productRepository struct {
	products *mongo.Collection
}

// NewProductRepository is the constructor for the products collection repository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{products: db.Collection(productsCollection)}
}

func (repo *productRepository) MaxCatalogID(ctx context.Context) (int, bool, error) {
	var doc productDocument
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})
	if err := repo.products.FindOne(ctx, bson.D{}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, false, nil
		}

		return 0, false, domainerrors.NewDatabaseExecuteError(err, "failed to read max catalog id")
	}

	return doc.ID, true, nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if _, err := repo.products.InsertOne(ctx, fromProductDomain(product)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Wrapf(repository.ErrProductIDTaken, "catalog id %d", product.CatalogID)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

func (repo *productRepository) FindByCatalogID(ctx context.Context, catalogID int) (*entity.Product, error) {
	var doc productDocument
	if err := repo.products.FindOne(ctx, bson.D{{Key: "id", Value: catalogID}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return toProductDomain(&doc), nil
}

func (repo *productRepository) DeleteByCatalogID(ctx context.Context, catalogID int) (*entity.Product, error) {
	var doc productDocument
	if err := repo.products.FindOneAndDelete(ctx, bson.D{{Key: "id", Value: catalogID}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return toProductDomain(&doc), nil
}

func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	return repo.find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
}

func (repo *productRepository) ListByCategory(ctx context.Context, category string, limit int) ([]*entity.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	return repo.find(ctx, bson.D{{Key: "category", Value: category}}, opts)
}

func (repo *productRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]*entity.Product, error) {
	cursor, err := repo.products.Find(ctx, filter, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode products")
	}

	out := make([]*entity.Product, 0, len(docs))
	for i := range docs {
		out = append(out, toProductDomain(&docs[i]))
	}

	return out, nil
}

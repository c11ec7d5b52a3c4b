package mongo

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type cartRepository struct {
	users *mongo.Collection
}

// NewCartRepository is the constructor for the embedded cart repository.
func NewCartRepository(db *mongo.Database) repository.CartRepository {
	return &cartRepository{users: db.Collection(usersCollection)}
}

func cartField(itemID string) string {
	return "cartData." + itemID
}

func (repo *cartRepository) Get(ctx context.Context, userID uuid.UUID) (entity.Cart, error) {
	var doc struct {
		CartData map[string]int `bson:"cartData"`
	}
	opts := options.FindOne().SetProjection(bson.D{{Key: "cartData", Value: 1}})
	if err := repo.users.FindOne(ctx, bson.D{{Key: "_id", Value: userID.String()}}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load cart")
	}

	cart := make(entity.Cart, len(doc.CartData))
	for k, v := range doc.CartData {
		cart[k] = v
	}

	return cart, nil
}

// Increment applies $inc on the embedded field; the server serialises concurrent updates to one document.
func (repo *cartRepository) Increment(ctx context.Context, userID uuid.UUID, itemID string) error {
	res, err := repo.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: userID.String()}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: cartField(itemID), Value: 1}}}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment cart item")
	}
	if res.MatchedCount == 0 {
		return errors.Wrap(repository.ErrUserNotFound, "cart owner")
	}

	return nil
}

// Decrement only matches when the embedded quantity is above zero.
func (repo *cartRepository) Decrement(ctx context.Context, userID uuid.UUID, itemID string) error {
	field := cartField(itemID)
	res, err := repo.users.UpdateOne(ctx,
		bson.D{
			{Key: "_id", Value: userID.String()},
			{Key: field, Value: bson.D{{Key: "$gt", Value: 0}}},
		},
		bson.D{{Key: "$inc", Value: bson.D{{Key: field, Value: -1}}}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to decrement cart item")
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// Nothing matched: either the quantity is already zero or the owner is gone.
	count, err := repo.users.CountDocuments(ctx, bson.D{{Key: "_id", Value: userID.String()}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check cart owner")
	}
	if count == 0 {
		return errors.Wrap(repository.ErrUserNotFound, "cart owner")
	}

	return nil
}
